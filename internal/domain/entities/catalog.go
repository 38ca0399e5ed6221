package entities

// ResourceName identifies a localized string resource, e.g.
// "NavigationViewSettingsButtonName".
type ResourceName string

// Culture is a culture identifier such as "en-US". Cultures are compared by
// exact string match.
type Culture string

const (
	// InvariantCulture is the culture-agnostic identifier.
	InvariantCulture Culture = ""
	// DefaultCulture replaces the invariant culture on lookups.
	DefaultCulture Culture = "en-US"
)

// rootTag is the BCP 47 undetermined tag, golang.org/x/text's invariant.
const rootTag Culture = "und"

// IsInvariant reports whether c stands for the invariant culture.
func (c Culture) IsInvariant() bool {
	return c == InvariantCulture || c == rootTag
}

// Resolve returns the culture used as a lookup key: the invariant culture is
// never a key and resolves to DefaultCulture.
func (c Culture) Resolve() Culture {
	if c.IsInvariant() {
		return DefaultCulture
	}
	return c
}

func (c Culture) String() string {
	return string(c)
}

// LocalizationEntry maps a culture to the localized value for one resource.
// A missing culture means the resource is not translated for it.
type LocalizationEntry map[Culture]string

// Mappings is the full resource table: resource name to its entry.
type Mappings map[ResourceName]LocalizationEntry

// Clone returns a deep copy of m. Nil entries become empty entries.
func (m Mappings) Clone() Mappings {
	out := make(Mappings, len(m))
	for name, entry := range m {
		cp := make(LocalizationEntry, len(entry))
		for c, v := range entry {
			cp[c] = v
		}
		out[name] = cp
	}
	return out
}
