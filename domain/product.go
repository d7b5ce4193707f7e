package domain

import "time"

// CREATE TABLE public.products (
//     id                       BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name                     TEXT NOT NULL,
//     description              TEXT NOT NULL,
//     price                    NUMERIC NOT NULL,
//     quantity                 INTEGER NOT NULL DEFAULT 0,
//     image_filename           TEXT,
//     is_featured              BOOLEAN DEFAULT FALSE,
//     custom_input_label       TEXT,
//     custom_input_placeholder TEXT,
//     custom_input_required    BOOLEAN DEFAULT FALSE,
//     admin_description        TEXT,
//     section_id               BIGINT NOT NULL REFERENCES sections(id),
//     created_at               TIMESTAMPTZ DEFAULT NOW()
// );

type Product struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"column:name;not null" json:"name"`
	Description string  `gorm:"column:description;type:text;not null" json:"description"`
	Price       float64 `gorm:"column:price;type:numeric;not null" json:"price"`
	Quantity    int     `gorm:"column:quantity;not null;default:0" json:"quantity"`
	ImageFilename string `gorm:"column:image_filename" json:"image_filename"`
	IsFeatured    bool   `gorm:"column:is_featured;default:false" json:"is_featured"`

	// Custom input collected at add-to-cart time, e.g. a game account ID.
	CustomInputLabel       string `gorm:"column:custom_input_label" json:"custom_input_label"`
	CustomInputPlaceholder string `gorm:"column:custom_input_placeholder" json:"custom_input_placeholder"`
	CustomInputRequired    bool   `gorm:"column:custom_input_required;default:false" json:"custom_input_required"`

	// Shown to the buyer before add to cart.
	AdminDescription string `gorm:"column:admin_description;type:text" json:"admin_description"`

	SectionID uint      `gorm:"column:section_id;not null" json:"section_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (Product) TableName() string {
	return "products"
}
