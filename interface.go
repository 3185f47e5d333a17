package tileset

// Exporter writes a manifest out in a form some consumer reads
type Exporter interface {
	// Export every entry of `m`, in manifest order
	Export(m *Manifest) error
}
