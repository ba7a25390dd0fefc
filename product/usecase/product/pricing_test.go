package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemandForecast(t *testing.T) {
	t.Run("minimum base applies for low sales", func(t *testing.T) {
		assert.Equal(t, 5.0, DemandForecast(0, 500))
	})

	t.Run("zero selling price yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DemandForecast(100, 0))
	})

	t.Run("negative selling price yields zero", func(t *testing.T) {
		assert.Equal(t, 0.0, DemandForecast(100, -10))
	})

	t.Run("units sold scale the base", func(t *testing.T) {
		// base = 100 * 1.2 = 120, factor = 0.5
		assert.Equal(t, 60.0, DemandForecast(100, 500))
	})

	t.Run("price above 1000 goes negative", func(t *testing.T) {
		// base = 120, factor = -0.1
		assert.Equal(t, -12.0, DemandForecast(100, 1100))
	})
}

func TestOptimisedPrice(t *testing.T) {
	t.Run("margin preserved plus forecast adjustment", func(t *testing.T) {
		assert.Equal(t, 150.1, OptimisedPrice(100, 150, 5.0))
	})

	t.Run("never below cost price", func(t *testing.T) {
		// selling below cost gives a negative margin; result floors at cost
		assert.Equal(t, 100.0, OptimisedPrice(100, 50, 0))
	})

	t.Run("zero cost price means zero margin", func(t *testing.T) {
		// margin is 0, only the adjustment remains
		assert.Equal(t, 0.1, OptimisedPrice(0, 150, 5.0))
	})
}
