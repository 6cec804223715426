package plant

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettleStale_AbandonedPlantDies(t *testing.T) {
	repo := newFakeRepository()
	abandoned := healthyPlant("gone")
	abandoned.WateredAt = testStart.Add(-6 * 24 * time.Hour)
	abandoned.RefreshedAt = abandoned.WateredAt
	repo.addPlant(abandoned)

	fresh := healthyPlant("here")
	repo.addPlant(fresh)

	svc := newTestService(t, repo, testStart)

	settled, err := svc.SettleStale(context.Background(), 2*time.Hour, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, settled, "only the stale plant should be touched")

	assert.True(t, repo.plants["gone"].Dead)
	assert.True(t, repo.plants["gone"].RefreshedAt.Equal(testStart))
	assert.False(t, repo.plants["here"].Dead)
}

func TestSettleStale_RespectsBatchLimit(t *testing.T) {
	repo := newFakeRepository()
	for _, id := range []string{"a", "b", "c"} {
		p := healthyPlant(id)
		p.RefreshedAt = testStart.Add(-3 * time.Hour)
		repo.addPlant(p)
	}
	svc := newTestService(t, repo, testStart)

	settled, err := svc.SettleStale(context.Background(), time.Hour, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, settled)
}

func TestSweepJob_Process(t *testing.T) {
	repo := newFakeRepository()
	p := healthyPlant("u1")
	p.RefreshedAt = testStart.Add(-2 * time.Hour)
	repo.addPlant(p)
	svc := newTestService(t, repo, testStart)

	job := NewSweepJob(svc, time.Hour, 10)
	require.NoError(t, job.Process(context.Background()))
	assert.True(t, repo.plants["u1"].RefreshedAt.Equal(testStart))
}
