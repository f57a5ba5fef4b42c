package render

type Renderer[T any] interface {
	Render(result T) error
}

// Format selects how structured results are written
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a --format value
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", &UnknownFormatError{Format: s}
	}
}

// UnknownFormatError is returned for an unsupported --format value
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "unknown format '" + e.Format + "' (expected text, json, yaml or toml)"
}
