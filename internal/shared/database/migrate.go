package database

import (
	"tixly/internal/admin"
	"tixly/internal/events"
	"tixly/internal/orders"
	"tixly/internal/payments"
	"tixly/internal/tickets"
	"tixly/internal/users"
	"tixly/internal/vendors"
	"tixly/internal/withdrawals"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 defaults on primary keys need the extension in place
	// before the first table is created.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&users.User{},
		&vendors.Vendor{},
		&events.Event{},
		&tickets.TicketType{},
		&tickets.Ticket{},
		&orders.Order{},
		&payments.Payment{},
		&withdrawals.Withdrawal{},
		&users.Favorite{},
		&admin.SystemSetting{},
	)
}
