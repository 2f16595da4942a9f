package types

// FileItem collects uploaded files through file sharing references. An empty
// Types list means any file type is accepted.
type FileItem struct {
	Types               []string `bson:"types,omitempty" json:"types,omitempty"`
	AcceptMultipleFiles bool     `bson:"acceptMultipleFiles" json:"acceptMultipleFiles"`
	IsRequired          bool     `bson:"isRequired" json:"isRequired"`
}

func (f FileItem) Validate() error {
	return nil
}

func (f FileItem) AcceptsType(fileType string) bool {
	if len(f.Types) == 0 {
		return true
	}
	for _, t := range f.Types {
		if t == fileType {
			return true
		}
	}
	return false
}
