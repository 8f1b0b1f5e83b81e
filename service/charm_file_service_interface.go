package service

// CharmFileServiceInterface defines the contract for charm image file
// management.
type CharmFileServiceInterface interface {
	Path(filename string) (string, error)
	Upload(filename string, data []byte, overwrite bool) error
	Save(filename string, data []byte, overwrite bool) error
	Rename(oldName, newName string, overwrite bool) error
	Delete(filename string) error
	Exists(filename string) bool
}
