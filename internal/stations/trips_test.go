package stations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanTripComputesDurationInMinutes(t *testing.T) {
	upstream := newFakeUpstream(nil)
	defer upstream.Close()

	manager := newTestManager(t, upstream, Config{})

	trip, err := manager.PlanTrip(context.Background(), "12TH", "EMBR")
	require.NoError(t, err)

	assert.Equal(t, "8:00 AM", trip.DepartTime)
	assert.Equal(t, "8:35 AM", trip.ArriveTime)
	assert.Equal(t, 35, trip.DurationMinutes)
}

func TestPlanTripEnrichesStationNames(t *testing.T) {
	upstream := newFakeUpstream(nil)
	defer upstream.Close()

	manager := newTestManager(t, upstream, Config{})

	trip, err := manager.PlanTrip(context.Background(), "12TH", "COLS")
	require.NoError(t, err)

	assert.Equal(t, "12th St. Oakland City Center", trip.OriginName)
	assert.Equal(t, "Coliseum", trip.DestinationName)

	require.Len(t, trip.Legs, 1)
	assert.Equal(t, "12th St. Oakland City Center", trip.Legs[0].OriginName)
	assert.Equal(t, "Coliseum", trip.Legs[0].DestinationName)
}

func TestPlanTripCoercesSingleLegIntoList(t *testing.T) {
	upstream := newFakeUpstream(nil)
	defer upstream.Close()

	manager := newTestManager(t, upstream, Config{})

	trip, err := manager.PlanTrip(context.Background(), "12TH", "EMBR")
	require.NoError(t, err)

	require.Len(t, trip.Legs, 1)
	assert.Equal(t, 1, trip.Legs[0].Order)
	assert.Equal(t, "ROUTE 1", trip.Legs[0].Line)
}

func TestPlanTripFallsBackToAbbreviationForUnknownStations(t *testing.T) {
	upstream := newFakeUpstream(nil)
	defer upstream.Close()

	manager := newTestManager(t, upstream, Config{})

	// The fake schedule endpoint echoes whatever abbreviations it is
	// given, including ones absent from the station list.
	trip, err := manager.PlanTrip(context.Background(), "ZZZZ", "EMBR")
	require.NoError(t, err)
	assert.Equal(t, "ZZZZ", trip.OriginName)
	assert.Equal(t, "Embarcadero", trip.DestinationName)
}

func TestTripDuration(t *testing.T) {
	tests := []struct {
		name    string
		depart  string
		arrive  string
		want    int
		wantErr bool
	}{
		{name: "same morning", depart: "8:00 AM", arrive: "8:35 AM", want: 35},
		{name: "across noon", depart: "11:50 AM", arrive: "12:10 PM", want: 20},
		{name: "crossing midnight", depart: "11:50 PM", arrive: "12:20 AM", want: 30},
		{name: "garbage departure", depart: "not a time", arrive: "8:35 AM", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tripDuration("08/29/2026", tt.depart, tt.arrive)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
