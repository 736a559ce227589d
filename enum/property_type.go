package enum

type PropertyType string

const (
	PropertyType1BHK   PropertyType = "1 BHK"
	PropertyType2BHK   PropertyType = "2 BHK"
	PropertyType3BHK   PropertyType = "3 BHK"
	PropertyType1Bed   PropertyType = "1 Bed"
	PropertyType2Bed   PropertyType = "2 Bed"
	PropertyType3Bed   PropertyType = "3 Bed"
	PropertyTypeStudio PropertyType = "Studio"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyType1BHK, PropertyType2BHK, PropertyType3BHK,
		PropertyType1Bed, PropertyType2Bed, PropertyType3Bed, PropertyTypeStudio:
		return true
	}
	return false
}
