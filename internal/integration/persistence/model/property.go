package model

import "github.com/easyimob/backend/internal/domain/entity"

// PropertyModel represents the imovel table in the database.
type PropertyModel struct {
	Code        int    `gorm:"column:codigo_imovel;primaryKey;autoIncrement"`
	Description string `gorm:"column:descricao_imovel;type:varchar(255);not null"`
	TypeID      int    `gorm:"column:id_tipo;not null;index"`

	// Relationship (not loaded by default, use Preload)
	Type *PropertyTypeModel `gorm:"foreignKey:TypeID;references:ID"`
}

// TableName returns the table name for the PropertyModel.
func (PropertyModel) TableName() string {
	return "imovel"
}

// ToEntity converts a PropertyModel to a domain Property entity.
func (m *PropertyModel) ToEntity() *entity.Property {
	return &entity.Property{
		Code:        m.Code,
		Description: m.Description,
		TypeID:      m.TypeID,
	}
}
