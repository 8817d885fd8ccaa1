package bootstrap

import (
	"fmt"

	"gbsorgapi/models"
	"gbsorgapi/pkg/logger"

	"gorm.io/gorm"
)

// CatalogSummary holds row counts of the organization catalog taken at startup.
type CatalogSummary struct {
	Departments int64
	Villages    int64
	Groups      int64
	Users       int64
}

// LoadData checks that the catalog tables are reachable and logs their sizes.
func LoadData(db *gorm.DB) (*CatalogSummary, error) {
	logger.Infof("Starting bootstrap catalog check...")

	summary := &CatalogSummary{}
	if err := countTable(db, &models.Department{}, &summary.Departments); err != nil {
		return nil, err
	}
	if err := countTable(db, &models.Village{}, &summary.Villages); err != nil {
		return nil, err
	}
	if err := countTable(db, &models.GbsGroup{}, &summary.Groups); err != nil {
		return nil, err
	}
	if err := countTable(db, &models.User{}, &summary.Users); err != nil {
		return nil, err
	}

	logger.Infof("Catalog loaded: departments=%d, villages=%d, groups=%d, users=%d",
		summary.Departments, summary.Villages, summary.Groups, summary.Users)
	return summary, nil
}

func countTable(db *gorm.DB, model interface{ TableName() string }, out *int64) error {
	if err := db.Model(model).Count(out).Error; err != nil {
		logger.Errorf("Failed to count %s: %v", model.TableName(), err)
		return fmt.Errorf("failed to count %s: %v", model.TableName(), err)
	}
	return nil
}
