package inmemory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"

	"github.com/intakekit/intake/applications/server/domain"
	"github.com/intakekit/intake/applications/server/interfaces"
)

const defaultFreeSpaceInBytes = 100 * 1024 * 1024 // 100 Mb

type storedFile struct {
	name string
	data []byte
}

type inMemoryStorage struct {
	filesByID map[string]storedFile
	freeSpace int64
	log       log.Logger
	mutex     sync.RWMutex
}

func NewStorage(logger log.Logger) interfaces.StorageCapability {
	return &inMemoryStorage{
		log:       logger,
		filesByID: map[string]storedFile{},
		freeSpace: defaultFreeSpaceInBytes,
	}
}

func (m *inMemoryStorage) Store(ctx context.Context, name string, content io.Reader) (string, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return "", err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	dataLen := int64(len(data))
	if dataLen > m.freeSpace {
		return "", fmt.Errorf("not enough free space")
	}

	id := uuid.NewString()
	m.filesByID[id] = storedFile{name: name, data: data}
	m.freeSpace -= dataLen

	level.Info(m.log).Log("msg", "file stored",
		"id", id,
		"name", name,
		"size", humanize.Bytes(uint64(dataLen)),
		"free_space", humanize.Bytes(uint64(m.freeSpace)),
	)

	return id, nil
}

func (m *inMemoryStorage) Open(ctx context.Context, id string) (domain.StoredFile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	f, ok := m.filesByID[id]
	if !ok {
		return domain.StoredFile{}, interfaces.ErrNotFound
	}

	level.Info(m.log).Log("msg", "file read",
		"id", id,
		"name", f.name,
	)

	return domain.StoredFile{
		Name:          f.name,
		ContentLength: int64(len(f.data)),
		Body:          io.NopCloser(bytes.NewReader(f.data)),
	}, nil
}

func (m *inMemoryStorage) Delete(ctx context.Context, id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	f, ok := m.filesByID[id]
	if !ok {
		return interfaces.ErrNotFound
	}

	delete(m.filesByID, id)
	m.freeSpace += int64(len(f.data))

	return nil
}
