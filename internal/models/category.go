package models

// CategoryName is a closed enumeration; categories are seeded at startup and
// read-only over HTTP.
type CategoryName string

const (
	CategoryMazaoYaBiashara CategoryName = "mazao_ya_biashara" // cash crops
	CategoryMazaoYaChakula  CategoryName = "mazao_ya_chakula"  // food crops
	CategoryNafaka          CategoryName = "nafaka"            // cereals
)

// AllCategoryNames lists the fixed set in seeding order.
func AllCategoryNames() []CategoryName {
	return []CategoryName{
		CategoryMazaoYaBiashara,
		CategoryMazaoYaChakula,
		CategoryNafaka,
	}
}

type Category struct {
	BaseModel
	Name CategoryName `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}
