package tickets

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// The count for a ticket listing must see the same joined row set as the
// page itself, or a ticket with a dangling reference would be counted but
// never listed.
func TestTicketCountMirrorsDetailJoins(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)
	repo := &repository{db: db}

	var total int64
	stmt := repo.ticketCountQuery(context.Background()).
		Where("tickets.user_id = ?", uuid.New()).
		Count(&total).Statement

	sql := stmt.SQL.String()
	for _, join := range []string{
		"JOIN events ON events.id = tickets.event_id",
		"JOIN ticket_types ON ticket_types.id = tickets.ticket_type_id",
		"JOIN orders ON orders.id = tickets.order_id",
	} {
		assert.Contains(t, sql, join)
	}
}
