package tenant

import "gorm.io/gorm"

// Scope restricts a query to one company.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// OwnerScope restricts a query to one company and one owning user.
func OwnerScope(companyID, userID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ? AND user_id = ?", companyID, userID)
	}
}
