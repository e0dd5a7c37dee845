// Package model defines database models for persistence layer.
package model

import "github.com/easyimob/backend/internal/domain/entity"

// PropertyTypeModel represents the tipo_imovel table in the database.
type PropertyTypeModel struct {
	ID   int    `gorm:"column:id_tipo;primaryKey;autoIncrement"`
	Name string `gorm:"column:nome;type:varchar(80);not null;uniqueIndex"`
}

// TableName returns the table name for the PropertyTypeModel.
func (PropertyTypeModel) TableName() string {
	return "tipo_imovel"
}

// ToEntity converts a PropertyTypeModel to a domain PropertyType entity.
func (m *PropertyTypeModel) ToEntity() *entity.PropertyType {
	return &entity.PropertyType{
		ID:   m.ID,
		Name: m.Name,
	}
}
