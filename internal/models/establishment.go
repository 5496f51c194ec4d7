package models

type EstablishmentImage struct {
	ID              uint   `json:"id"`
	FileName        string `json:"fileName"`
	FilePath        string `json:"filePath"`
	PublicID        string `json:"publicId"`
	EstablishmentID uint   `json:"establishmentId"`
}

type Establishment struct {
	ID            uint                 `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	AreaM2        float64              `json:"areaM2"`
	RentValueBase float64              `json:"rentValueBase"`
	Address       string               `json:"address"`
	PlazaID       uint                 `json:"plazaId"`
	PlazaName     string               `json:"plazaName"`
	Active        bool                 `json:"active"`
	UvtQty        float64              `json:"uvtQty"`
	Images        []EstablishmentImage `json:"images"`
}

type EstablishmentCreate struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	AreaM2      float64 `json:"areaM2"`
	UvtQty      float64 `json:"uvtQty"`
	Address     string  `json:"address"`
	PlazaID     uint    `json:"plazaId"`
}
