package models

type PlazaImage struct {
	ID       uint   `json:"id"`
	FilePath string `json:"filePath"`
	PlazaID  uint   `json:"plazaId"`
}

type Plaza struct {
	ID          uint         `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Address     string       `json:"address,omitempty"`
	Active      bool         `json:"active"`
	Images      []PlazaImage `json:"images,omitempty"`
}
