package host

import (
	"crypto/rand"
	"math"
	"math/big"
	"sync"

	"github.com/pkg/errors"

	"github.com/suborbital/extkit/native"
)

// Handle identifies a live object in a Runtime. Handles fit in an i32 so they can cross into Wasm guests.
type Handle int32

type object struct {
	class *native.Class
	value native.Base
}

// objectStore maps random int32 handles to live objects
type objectStore struct {
	objects sync.Map
	count   int64
	lock    sync.Mutex
}

func (s *objectStore) get(h Handle) (*object, error) {
	raw, exists := s.objects.Load(h)
	if !exists {
		return nil, errors.Wrapf(ErrUnknownObject, "handle %d", h)
	}

	return raw.(*object), nil
}

func (s *objectStore) add(obj *object) (Handle, error) {
	for {
		ident, err := randomIdentifier()
		if err != nil {
			return -1, errors.Wrap(err, "failed to randomIdentifier")
		}

		// ensure we don't accidentally overwrite something else
		// (however unlikely that may be)
		if _, exists := s.objects.LoadOrStore(Handle(ident), obj); exists {
			continue
		}

		s.lock.Lock()
		s.count++
		s.lock.Unlock()

		return Handle(ident), nil
	}
}

func (s *objectStore) remove(h Handle) (*object, error) {
	raw, exists := s.objects.LoadAndDelete(h)
	if !exists {
		return nil, errors.Wrapf(ErrUnknownObject, "handle %d", h)
	}

	s.lock.Lock()
	s.count--
	s.lock.Unlock()

	return raw.(*object), nil
}

func (s *objectStore) len() int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return int(s.count)
}

func randomIdentifier() (int32, error) {
	// generate a random number between 1 and the largest possible int32, 0 is never a valid handle
	num, err := rand.Int(rand.Reader, big.NewInt(math.MaxInt32-1))
	if err != nil {
		return -1, errors.Wrap(err, "failed to rand.Int")
	}

	return int32(num.Int64()) + 1, nil
}
