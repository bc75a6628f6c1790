package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// DistanceTestSuite provides a test suite for Haversine distance.
type DistanceTestSuite struct {
	suite.Suite
}

func (suite *DistanceTestSuite) TestDistanceKm() {
	suite.Run("SamePoint_ShouldBeZero", func() {
		d, err := DistanceKm(55.7558, 37.6173, 55.7558, 37.6173)

		require.NoError(suite.T(), err)
		assert.Zero(suite.T(), d)
	})

	suite.Run("KnownDistance_MoscowCenter", func() {
		// Red Square to Tverskaya 15, roughly 660 m.
		d, err := DistanceKm(55.7558, 37.6173, 55.7500, 37.6200)

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), 0.66, d, 0.05)
	})

	suite.Run("Symmetry", func() {
		d1, err1 := DistanceKm(55.7558, 37.6173, 55.7600, 37.6100)
		d2, err2 := DistanceKm(55.7600, 37.6100, 55.7558, 37.6173)

		require.NoError(suite.T(), err1)
		require.NoError(suite.T(), err2)
		assert.InDelta(suite.T(), d1, d2, 1e-12)
	})

	suite.Run("Antipodes_ShouldBeHalfCircumference", func() {
		d, err := DistanceKm(0, 0, 0, 180)

		require.NoError(suite.T(), err)
		assert.InDelta(suite.T(), math.Pi*EarthRadiusKm, d, 0.001)
	})

	suite.Run("LatitudeOutOfRange_ShouldReturnError", func() {
		_, err := DistanceKm(91, 0, 0, 0)

		assert.Error(suite.T(), err)
	})

	suite.Run("LongitudeOutOfRange_ShouldReturnError", func() {
		_, err := DistanceKm(0, 0, 0, 181)

		assert.Error(suite.T(), err)
	})

	suite.Run("NaN_ShouldReturnError", func() {
		_, err := DistanceKm(math.NaN(), 0, 0, 0)

		assert.Error(suite.T(), err)
	})
}

func (suite *DistanceTestSuite) TestValidateCoordinates() {
	assert.NoError(suite.T(), ValidateCoordinates(-90, -180))
	assert.NoError(suite.T(), ValidateCoordinates(90, 180))
	assert.Error(suite.T(), ValidateCoordinates(-90.001, 0))
	assert.Error(suite.T(), ValidateCoordinates(0, math.Inf(1)))
}

func TestDistanceTestSuite(t *testing.T) {
	suite.Run(t, new(DistanceTestSuite))
}
