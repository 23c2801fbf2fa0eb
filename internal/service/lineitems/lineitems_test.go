package lineitems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"partshub/internal/domain"
	apperror "partshub/internal/errors"
)

type catalog map[string]domain.Part

func (c catalog) Part(id string) (domain.Part, bool) {
	p, ok := c[id]
	return p, ok
}

var testCatalog = catalog{
	"p1": {ID: "p1", Name: "Oil Filter", Price: 250},
	"p4": {ID: "p4", Name: "Engine Oil", Price: 1200},
}

func TestNormalizeQuantity(t *testing.T) {
	q, err := NormalizeQuantity(0)
	require.NoError(t, err)
	assert.Equal(t, 1, q)

	q, err = NormalizeQuantity(4)
	require.NoError(t, err)
	assert.Equal(t, 4, q)

	_, err = NormalizeQuantity(-1)
	assert.IsType(t, &apperror.ValidationError{}, err)

	q, err = NormalizeQuantity(domain.MaxQuantity)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity, q)

	_, err = NormalizeQuantity(domain.MaxQuantity + 1)
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = NormalizeQuantity(math.MaxInt)
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestResolve(t *testing.T) {
	items, err := Resolve(testCatalog, []domain.ItemRequest{{PartID: "p1", Quantity: 2}, {PartID: "p4"}})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Oil Filter", items[0].Part.Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestResolve_Errors(t *testing.T) {
	_, err := Resolve(testCatalog, []domain.ItemRequest{{PartID: "p99", Quantity: 1}})
	assert.IsType(t, &apperror.NotFoundError{}, err)

	_, err = Resolve(testCatalog, []domain.ItemRequest{{PartID: "", Quantity: 1}})
	assert.IsType(t, &apperror.ValidationError{}, err)

	_, err = Resolve(testCatalog, []domain.ItemRequest{{PartID: "p1", Quantity: -2}})
	assert.IsType(t, &apperror.ValidationError{}, err)
}
