package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"fluentloc/internal/domain"
	"fluentloc/internal/domain/entities"
	"fluentloc/internal/ports/output"
)

// DefaultPath is the resource file used when none is configured.
const DefaultPath = "localization/Localization_NavigationView.json"

// Supported file formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

var _ output.CatalogSource = (*FileSource)(nil)

// FileSource loads a resource table from a single file shaped as
// { resourceName: { culture: value } }.
type FileSource struct {
	path   string
	fsys   fs.FS
	format string
}

// FileOption configures a FileSource.
type FileOption func(*FileSource)

// WithFS reads the file from fsys instead of the OS filesystem. path must
// then be a valid fs.FS path.
func WithFS(fsys fs.FS) FileOption {
	return func(s *FileSource) {
		s.fsys = fsys
	}
}

// WithFormat forces the decoder instead of picking it from the extension.
func WithFormat(format string) FileOption {
	return func(s *FileSource) {
		s.format = strings.ToLower(format)
	}
}

// NewFileSource creates a FileSource for path. An empty path selects
// DefaultPath.
func NewFileSource(path string, opts ...FileOption) *FileSource {
	if path == "" {
		path = DefaultPath
	}
	s := &FileSource{path: path}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *FileSource) String() string {
	return "file " + s.path
}

// Load reads and decodes the whole file.
func (s *FileSource) Load(ctx context.Context) (entities.Mappings, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	m, err := Decode(s.resolveFormat(), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}
	return m, nil
}

func (s *FileSource) read() ([]byte, error) {
	if s.fsys != nil {
		return fs.ReadFile(s.fsys, s.path)
	}
	return os.ReadFile(s.path)
}

func (s *FileSource) resolveFormat() string {
	if s.format != "" {
		return s.format
	}
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// rawTable mirrors the file shape. Pointers let null values be told apart
// from empty strings.
type rawTable map[string]map[string]*string

// Decode parses data in the given format into a resource table. Null values
// are dropped: absence is how an untranslated culture is represented. Data
// that is not UTF-8, or whose document is empty or null, is rejected.
func Decode(format string, data []byte) (entities.Mappings, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", domain.ErrMalformedResources)
	}

	var raw rawTable
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &raw)
	case FormatTOML:
		err = toml.Unmarshal(data, &raw)
	case FormatYAML:
		err = yaml.Unmarshal(data, &raw)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: document is empty or null", domain.ErrMalformedResources)
	}
	return raw.toMappings(), nil
}

func (r rawTable) toMappings() entities.Mappings {
	m := make(entities.Mappings, len(r))
	for name, cultures := range r {
		entry := make(entities.LocalizationEntry, len(cultures))
		for ci, v := range cultures {
			if v == nil {
				continue
			}
			entry[entities.Culture(ci)] = *v
		}
		m[entities.ResourceName(name)] = entry
	}
	return m
}
