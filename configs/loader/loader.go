package loader

// ConfigLoader yields a flat map of configuration values.
type ConfigLoader interface {
	Load() (map[string]string, error)
}
