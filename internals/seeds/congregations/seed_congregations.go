package congregations

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/congregations/congregations/model"
)

//go:embed data_congregations.json
var defaultCongregations []byte

type CongregationSeed struct {
	Name     string  `json:"name"`
	Title    *string `json:"title"`
	Birthday *string `json:"birthday"`
	Status   string  `json:"status"`
}

// SeedCongregationsFromJSON: jemaat dengan nama + gelar yang sama dilewati.
func SeedCongregationsFromJSON(ctx context.Context, db *gorm.DB, filePath string) (int, error) {
	data := defaultCongregations
	if filePath != "" {
		logrus.Info("📥 Membaca file: ", filePath)
		b, err := os.ReadFile(filePath)
		if err != nil {
			return 0, fmt.Errorf("gagal membaca file JSON: %w", err)
		}
		data = b
	}

	var seeds []CongregationSeed
	if err := json.Unmarshal(data, &seeds); err != nil {
		return 0, fmt.Errorf("gagal decode JSON: %w", err)
	}

	created := 0
	for _, s := range seeds {
		q := db.WithContext(ctx).Model(&model.CongregationModel{}).Where("congregation_name = ?", s.Name)
		if s.Title != nil {
			q = q.Where("congregation_title = ?", *s.Title)
		} else {
			q = q.Where("congregation_title IS NULL")
		}
		var n int64
		if err := q.Count(&n).Error; err != nil {
			return created, err
		}
		if n > 0 {
			continue
		}

		m := model.CongregationModel{
			CongregationName:   s.Name,
			CongregationTitle:  s.Title,
			CongregationStatus: s.Status,
		}
		if s.Birthday != nil && *s.Birthday != "" {
			t, err := time.Parse("2006-01-02", *s.Birthday)
			if err != nil {
				return created, fmt.Errorf("birthday %q tidak valid: %w", *s.Birthday, err)
			}
			d := datatypes.Date(t)
			m.CongregationBirthday = &d
		}
		if err := db.WithContext(ctx).Create(&m).Error; err != nil {
			return created, err
		}
		created++
	}

	logrus.Infof("✅ Seeded %d congregations", created)
	return created, nil
}
