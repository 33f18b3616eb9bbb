package cache

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	connectionTimeout  = 3 * time.Second
	redisContainerName = "redis-cache-test-churn"
	redisTestPassword  = "cache-test"
	redisPort          = "6380"
)

const (
	testModelVersion = "xgboost-churn-v1"
	testPayload      = "0,1,0,0,1,1,20,0,0,1,0,1,0,0,0,0,0,0,0,0,1,1,0,0,1,1,0,0,0,10,24.45,482.8,0,0,0,482.8,3298,3"
)

type predictionCacheTestSuite struct {
	suite.Suite
	dockerPool  *dockertest.Pool
	redis       *dockertest.Resource
	redisClient *redis.Client
	cache       PredictionCache
}

func (s *predictionCacheTestSuite) SetupSuite() {
	t := s.T()
	assert := s.Require()

	t.Log("build docker pool")
	dockerPool, err := dockertest.NewPool("")
	assert.NoError(err, "failed to create pool")
	assert.NoError(dockerPool.Client.Ping(), "failed to connect to docker")
	s.dockerPool = dockerPool

	t.Log("starting redis...")
	s.redis, err = dockerPool.RunWithOptions(&dockertest.RunOptions{
		Name:       redisContainerName,
		Repository: "redis",
		Tag:        "latest",
		Cmd:        []string{"redis-server", "--requirepass", redisTestPassword},
		PortBindings: map[docker.Port][]docker.PortBinding{
			"6379/tcp": {{HostIP: "localhost", HostPort: fmt.Sprintf("%s/tcp", redisPort)}},
		},
	})
	assert.NoError(err, "failed to start redis")

	t.Log("connecting to redis...")
	err = dockerPool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
		defer cancel()

		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("localhost:%s", redisPort),
			Password: redisTestPassword,
		})
		return s.redisClient.Ping(ctx).Err()
	})
	assert.NoError(err, "failed to establish connection to redis")

	s.cache = NewRedisPredictionCache(s.redisClient, time.Minute)
}

func (s *predictionCacheTestSuite) TearDownSuite() {
	t := s.T()

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			t.Logf("failed to gracefully close connection to redis - %v", err)
		}
	}

	if s.redis != nil {
		if err := s.dockerPool.Purge(s.redis); err != nil {
			t.Logf("failed to purge redis container - %v", err)
		}
	}
}

func (s *predictionCacheTestSuite) TestStoreAndFind() {
	ctx := context.Background()
	computedAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	s.T().Log("missing prediction is not an error")
	{
		p, err := s.cache.Find(ctx, testModelVersion, testPayload)
		s.Require().NoError(err)
		s.Require().Nil(p)
	}

	s.T().Log("stored prediction is found by the same version and payload")
	{
		err := s.cache.Store(ctx, testPayload, &CachedPrediction{Probability: 0.4907, ModelVersion: testModelVersion, ComputedAt: computedAt})
		s.Require().NoError(err)

		p, err := s.cache.Find(ctx, testModelVersion, testPayload)
		s.Require().NoError(err)
		s.Require().NotNil(p)
		s.Require().Equal(0.4907, p.Probability)
		s.Require().True(computedAt.Equal(p.ComputedAt))
	}

	s.T().Log("other model version never sees cached value")
	{
		p, err := s.cache.Find(ctx, "xgboost-churn-v2", testPayload)
		s.Require().NoError(err)
		s.Require().Nil(p)
	}

	s.T().Log("first stored value wins")
	{
		err := s.cache.Store(ctx, testPayload, &CachedPrediction{Probability: 0.9, ModelVersion: testModelVersion, ComputedAt: computedAt})
		s.Require().NoError(err)

		p, err := s.cache.Find(ctx, testModelVersion, testPayload)
		s.Require().NoError(err)
		s.Require().Equal(0.4907, p.Probability)
	}
}

func (s *predictionCacheTestSuite) TestKeyDependsOnVersionAndPayload() {
	c := &redisPredictionCache{}
	s.Require().Equal(c.key(testModelVersion, testPayload), c.key(testModelVersion, testPayload))
	s.Require().NotEqual(c.key(testModelVersion, testPayload), c.key(testModelVersion, testPayload+",0"))
	s.Require().NotEqual(c.key(testModelVersion, testPayload), c.key("xgboost-churn-v2", testPayload))
}

func TestPredictionCacheTestSuite(t *testing.T) {
	suite.Run(t, new(predictionCacheTestSuite))
}

func TestNoopPredictionCache(t *testing.T) {
	c := NewNoopPredictionCache()
	ctx := context.Background()

	err := c.Store(ctx, testPayload, &CachedPrediction{Probability: 0.5, ModelVersion: testModelVersion})
	require.NoError(t, err, "noop cache must never fail")

	p, err := c.Find(ctx, testModelVersion, testPayload)
	require.NoError(t, err)
	require.Nil(t, p, "noop cache must never find anything")
}
