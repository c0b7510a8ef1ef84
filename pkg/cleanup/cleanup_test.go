package cleanup_test

import (
	"errors"
	"testing"

	"github.com/limbo/basetracker/pkg/cleanup"
	"github.com/stretchr/testify/assert"
)

func TestCleanUpOrder(t *testing.T) {
	var order []string
	for _, name := range []string{"store", "logger"} {
		cleanup.Register(&cleanup.Job{
			Name: name,
			F: func() error {
				order = append(order, name)
				return nil
			},
		})
	}
	cleanup.Register(&cleanup.Job{
		Name: "failing",
		F: func() error {
			order = append(order, "failing")
			return errors.New("already closed")
		},
	})
	cleanup.CleanUp()
	assert.Equal(t, []string{"failing", "logger", "store"}, order)

	cleanup.CleanUp()
	assert.Len(t, order, 3)
}
