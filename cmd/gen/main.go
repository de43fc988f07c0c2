package main

import (
	"rental/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates the typed query package for the rental tables.
func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(model.All()...)

	g.Execute()
}
