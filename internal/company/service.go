package company

import (
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func (cs *CompanyService) GetAllCompanies() ([]Company, error) {
	var companies []Company
	result := cs.DB.Order("company_name asc").Find(&companies)
	if result.Error != nil {
		return nil, result.Error
	}
	return companies, nil
}

func (cs *CompanyService) AddCompanies(names []string) error {
	companiesToAdd := []Company{}
	for _, name := range names {
		companiesToAdd = append(companiesToAdd, Company{Name: name})
	}
	result := cs.DB.Create(&companiesToAdd)
	return result.Error
}
