package model

// All lists every table managed by AutoMigrate, in dependency order.
func All() []interface{} {
	return []interface{}{
		&RelationshipType{},
		&Note{},
	}
}
