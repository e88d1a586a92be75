package models

import "time"

// Material is a catalog entry describing an engineering material. Density and
// CostPerKg are mandatory for weight/cost arithmetic; the remaining numeric
// properties are optional and nil when the datasheet does not provide them.
type Material struct {
	ID                    uint      `gorm:"primarykey" json:"id"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
	Name                  string    `gorm:"index;not null" json:"name"`
	Category              string    `gorm:"index;not null" json:"category"`
	Density               float64   `gorm:"not null" json:"density"`
	CostPerKg             float64   `gorm:"not null" json:"cost_per_kg"`
	TensileStrength       *float64  `json:"tensile_strength"`
	YieldStrength         *float64  `json:"yield_strength"`
	ElasticModulus        *float64  `json:"elastic_modulus"`
	ThermalExpansion      *float64  `json:"thermal_expansion"`
	ThermalConductivity   *float64  `json:"thermal_conductivity"`
	ElectricalResistivity *float64  `json:"electrical_resistivity"`
	CorrosionResistance   string    `json:"corrosion_resistance"`
	Machinability         *int      `json:"machinability"`
	Weldability           *int      `json:"weldability"`
	CommonUses            string    `gorm:"type:text" json:"common_uses"`

	ExtraProperties []MaterialProperty `gorm:"foreignKey:MaterialID" json:"extra_properties,omitempty"`
}

// MaterialProperty holds an auxiliary key/value property that is not part of
// the fixed attribute schema.
type MaterialProperty struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	MaterialID uint   `gorm:"index" json:"material_id"`
	Name       string `gorm:"not null" json:"name"`
	Value      string `gorm:"not null" json:"value"`
}
