package store

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// SchemaVersion is the current chat store schema. Version 1 kept per-chat
// settings as a single JSON "settings" column; version 2 splits them into
// mode/tone/length columns.
const SchemaVersion = 2

// Connect opens the chat store database.
func Connect(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect chat store: %w", err)
	}
	return db, nil
}

// Migrate applies the current schema and any forward migrations from older
// schema versions, then records the schema version.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Chat{}, &ChatMessage{}, &SchemaInfo{}); err != nil {
		return fmt.Errorf("auto-migrate chat store: %w", err)
	}

	var info SchemaInfo
	err := db.First(&info).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		// Fresh database - stamp the current version.
		return db.Create(&SchemaInfo{Version: SchemaVersion}).Error
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if info.Version > SchemaVersion {
		return fmt.Errorf("chat store schema version %d is newer than supported %d", info.Version, SchemaVersion)
	}

	if info.Version < 2 {
		if err := migrateSettingsColumns(db); err != nil {
			return fmt.Errorf("migrate chat store v1->v2: %w", err)
		}
		log.Printf("Chat store migrated: v%d -> v%d", info.Version, SchemaVersion)
	}

	info.Version = SchemaVersion
	return db.Save(&info).Error
}

// migrateSettingsColumns moves v1 per-chat settings out of the legacy JSON
// "settings" column into the dedicated columns, then drops it.
func migrateSettingsColumns(db *gorm.DB) error {
	if !db.Migrator().HasColumn(&Chat{}, "settings") {
		return nil
	}

	err := db.Exec(`
		UPDATE chats SET
			mode   = COALESCE(settings::jsonb->>'mode',   mode),
			tone   = COALESCE(settings::jsonb->>'tone',   tone),
			length = COALESCE(settings::jsonb->>'length', length)
		WHERE settings IS NOT NULL
	`).Error
	if err != nil {
		return err
	}

	return db.Migrator().DropColumn(&Chat{}, "settings")
}
