package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

// Generates the ent client for the validation schema into gen/ent.
func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/FadhilAufa5/kfa-validation-sub001/gen/ent",
			Schema:  "github.com/FadhilAufa5/kfa-validation-sub001/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
