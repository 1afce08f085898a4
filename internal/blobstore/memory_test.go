package blobstore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pedrolmns/big-lambda/internal/blobstore"
)

func TestMemoryStoreAbsentVersusError(t *testing.T) {
	store := blobstore.NewMemoryStore()
	ctx := context.Background()

	data, found, err := store.Load(ctx, "u1", blobstore.CollectionJobs)
	if err != nil {
		t.Fatalf("Um blob ausente não é erro: %v", err)
	}
	if found || data != nil {
		t.Errorf("Blob ausente deveria vir como found=false, recebido found=%v data=%v", found, data)
	}
}

func TestMemoryStoreRoundTripAndIsolation(t *testing.T) {
	store := blobstore.NewMemoryStore()
	ctx := context.Background()

	blob := []byte(`[{"id": "j1"}]`)
	if err := store.Save(ctx, "u1", blobstore.CollectionJobs, blob); err != nil {
		t.Fatalf("Save falhou: %v", err)
	}

	// Mutating the caller's slice must not reach the stored copy.
	blob[0] = 'X'

	data, found, err := store.Load(ctx, "u1", blobstore.CollectionJobs)
	if err != nil || !found {
		t.Fatalf("Load falhou: found=%v err=%v", found, err)
	}
	if string(data) != `[{"id": "j1"}]` {
		t.Errorf("O store deveria guardar uma cópia do blob, recebido %q", data)
	}

	if _, found, _ := store.Load(ctx, "u2", blobstore.CollectionJobs); found {
		t.Error("Coleções são isoladas por usuário")
	}
	if _, found, _ := store.Load(ctx, "u1", blobstore.CollectionClients); found {
		t.Error("Coleções são isoladas por nome")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := blobstore.NewMemoryStore()
	ctx := context.Background()

	if err := store.Save(ctx, "u1", blobstore.CollectionSettings, []byte(`{}`)); err != nil {
		t.Fatalf("Save falhou: %v", err)
	}
	if err := store.Delete(ctx, "u1", blobstore.CollectionSettings); err != nil {
		t.Fatalf("Delete falhou: %v", err)
	}
	if _, found, _ := store.Load(ctx, "u1", blobstore.CollectionSettings); found {
		t.Error("O blob deveria ter sido removido")
	}
}

func TestMemoryStoreFailSaves(t *testing.T) {
	store := blobstore.NewMemoryStore()
	store.FailSaves = true
	store.FailErr = errors.New("sem espaço")
	ctx := context.Background()

	err := store.Save(ctx, "u1", blobstore.CollectionJobs, []byte(`[]`))
	if !errors.Is(err, store.FailErr) {
		t.Errorf("Save deveria falhar com o erro configurado, recebido %v", err)
	}
	if _, found, _ := store.Load(ctx, "u1", blobstore.CollectionJobs); found {
		t.Error("Uma escrita que falhou não pode deixar dados para trás")
	}
}
