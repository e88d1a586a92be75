package substitution

import "materio/models"

type propertyKind int

const (
	propertyAbsent propertyKind = iota
	propertyNumber
	propertyText
)

// propertyValue is the tagged variant carried by the scorer: a weighted
// property is either absent, a number, or free text. Tagging once here keeps
// the scoring loop free of per-comparison type inspection.
type propertyValue struct {
	kind   propertyKind
	number float64
	text   string
}

func numberProperty(v *float64) propertyValue {
	if v == nil {
		return propertyValue{}
	}
	return propertyValue{kind: propertyNumber, number: *v}
}

func ratingProperty(v *int) propertyValue {
	if v == nil {
		return propertyValue{}
	}
	return propertyValue{kind: propertyNumber, number: float64(*v)}
}

func textProperty(v string) propertyValue {
	if v == "" {
		return propertyValue{}
	}
	return propertyValue{kind: propertyText, text: v}
}

// weightedProperty extracts the named weighted property from a material
// record. When the fixed attribute is absent, an auxiliary key/value property
// of the same name fills in as text; the scorer then sees mixed kinds for
// records that disagree on representation and skips the property.
func weightedProperty(m *models.Material, name string) propertyValue {
	var value propertyValue
	switch name {
	case "tensile_strength":
		value = numberProperty(m.TensileStrength)
	case "yield_strength":
		value = numberProperty(m.YieldStrength)
	case "elastic_modulus":
		value = numberProperty(m.ElasticModulus)
	case "thermal_expansion":
		value = numberProperty(m.ThermalExpansion)
	case "thermal_conductivity":
		value = numberProperty(m.ThermalConductivity)
	case "corrosion_resistance":
		value = textProperty(m.CorrosionResistance)
	case "machinability":
		value = ratingProperty(m.Machinability)
	case "weldability":
		value = ratingProperty(m.Weldability)
	}
	if value.kind != propertyAbsent {
		return value
	}

	for _, extra := range m.ExtraProperties {
		if extra.Name == name {
			return textProperty(extra.Value)
		}
	}
	return propertyValue{}
}
