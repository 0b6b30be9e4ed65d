package cache

import (
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/gomodule/redigo/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn answers the handful of commands the store sends.
type fakeConn struct {
	data map[string][]byte
	ttl  map[string]int
	sets map[string]map[string]bool
	fail error
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		data: map[string][]byte{},
		ttl:  map[string]int{},
		sets: map[string]map[string]bool{},
	}
}

func (f *fakeConn) Close() error { return nil }
func (f *fakeConn) Err() error { return nil }
func (f *fakeConn) Send(string, ...interface{}) error { return nil }
func (f *fakeConn) Flush() error { return nil }
func (f *fakeConn) Receive() (interface{}, error) { return nil, nil }

func (f *fakeConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	if cmd == "" {
		return nil, nil
	}
	if f.fail != nil {
		return nil, f.fail
	}
	key := args[0].(string)
	switch cmd {
	case "SET":
		f.data[key] = args[1].([]byte)
		if len(args) == 4 {
			f.ttl[key] = args[3].(int)
		}
		return "OK", nil
	case "GET":
		v, ok := f.data[key]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "DEL":
		delete(f.data, key)
		return int64(1), nil
	case "SADD":
		if f.sets[key] == nil {
			f.sets[key] = map[string]bool{}
		}
		f.sets[key][args[1].(string)] = true
		return int64(1), nil
	case "SREM":
		delete(f.sets[key], args[1].(string))
		return int64(1), nil
	case "SMEMBERS":
		var members []string
		for m := range f.sets[key] {
			members = append(members, m)
		}
		sort.Strings(members)
		out := make([]interface{}, len(members))
		for i, m := range members {
			out[i] = []byte(m)
		}
		return out, nil
	}
	return nil, errors.New("unexpected command " + cmd)
}

func newStore(conn *fakeConn, ttl time.Duration) *SnapshotStore {
	pool := &redis.Pool{Dial: func() (redis.Conn, error) { return conn, nil }}
	return NewSnapshotStore(pool, ttl)
}

func TestSnapshotStoreRoundTrip(t *testing.T) {
	conn := newFakeConn()
	store := newStore(conn, 2*time.Hour)
	snap := models.Snapshot{
		ID:         "g1",
		Phase:      models.PhaseAwaitRoll,
		Players:    []models.Player{{Name: "Anna", Token: "Elsa", Money: 1500, Properties: []int{}}},
		Properties: map[int]models.Ownership{3: {Owner: 0, Houses: 2}},
		ChanceDeck: []int{3, 1, 2},
		Winner:     -1,
	}

	require.NoError(t, store.Save(snap))
	assert.Equal(t, 7200, conn.ttl["game:g1"])

	got, err := store.Load("g1")
	require.NoError(t, err)
	assert.Equal(t, snap, got)

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"g1"}, ids)
}

func TestSnapshotStoreMiss(t *testing.T) {
	store := newStore(newFakeConn(), 0)
	_, err := store.Load("nope")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestFinishedGamesLeaveTheIndex(t *testing.T) {
	conn := newFakeConn()
	store := newStore(conn, 0)
	require.NoError(t, store.Save(models.Snapshot{ID: "a", Phase: models.PhaseAwaitRoll}))
	require.NoError(t, store.Save(models.Snapshot{ID: "b", Phase: models.PhaseAwaitRoll}))
	require.NoError(t, store.Save(models.Snapshot{ID: "a", Phase: models.PhaseGameOver}))

	ids, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids)

	require.NoError(t, store.Delete("b"))
	ids, err = store.List()
	require.NoError(t, err)
	assert.Empty(t, ids)
	_, err = store.Load("b")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestSnapshotStoreErrors(t *testing.T) {
	conn := newFakeConn()
	conn.fail = errors.New("connection reset")
	store := newStore(conn, 0)

	assert.Error(t, store.Save(models.Snapshot{ID: "a"}))
	_, err := store.Load("a")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
}
