// Command gen regenerates the type-safe gorm query API for the persistence
// models. Run it after changing any model struct.
package main

import (
	"agrisense/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(
		model.UserModel{},
		model.RefreshTokenModel{},
		model.DeviceModel{},
		model.SensorReadingModel{},
		model.AdvisoryModel{},
	)

	g.Execute()
}
