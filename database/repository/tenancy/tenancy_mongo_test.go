package tenancyRepo

import (
	"testing"

	"rentwise/models"

	"github.com/stretchr/testify/assert"
)

func TestTerminalStatuses(t *testing.T) {
	assert.ElementsMatch(t, []interface{}{
		models.TenancyRecordCompleted,
		models.TenancyRecordCancelled,
		models.TenancyRecordRejected,
	}, []interface{}(terminalStatuses))
}
