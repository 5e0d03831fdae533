package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library-ledger/internal/storage"
)

func TestBusDeliversToOtherViewers(t *testing.T) {
	bus := storage.NewBus()
	writer := bus.Join()
	readerA := bus.Join()
	readerB := bus.Join()

	var gotA, gotB []string
	readerA.OnChange(func(key string) { gotA = append(gotA, key) })
	readerB.OnChange(func(key string) { gotB = append(gotB, key) })

	writer.Publish(storage.KeyBooks)
	writer.Publish(storage.KeyIssuedBooks)

	assert.Equal(t, []string{storage.KeyBooks, storage.KeyIssuedBooks}, gotA)
	assert.Equal(t, []string{storage.KeyBooks, storage.KeyIssuedBooks}, gotB)
}

func TestBusSuppressesOwnEcho(t *testing.T) {
	bus := storage.NewBus()
	writer := bus.Join()

	var echoed bool
	writer.OnChange(func(string) { echoed = true })

	writer.Publish(storage.KeyBooks)

	assert.False(t, echoed, "a viewer must never observe its own writes")
}

func TestBusLeave(t *testing.T) {
	bus := storage.NewBus()
	writer := bus.Join()
	reader := bus.Join()

	var count int
	reader.OnChange(func(string) { count++ })

	writer.Publish(storage.KeyBooks)
	reader.Leave()
	writer.Publish(storage.KeyBooks)

	assert.Equal(t, 1, count)
}
