package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabodev/marketplace-api/internal/domain/entity"
)

func newTestStore(t *testing.T) *ProviderStore {
	t.Helper()
	store, err := NewProviderStore(filepath.Join(t.TempDir(), "proveedores.jsonl"))
	require.NoError(t, err)
	return store
}

func testProvider(email string) *entity.Provider {
	return &entity.Provider{
		Tipo:         "proveedor",
		Nombre:       "Ana",
		Email:        email,
		PasswordHash: "$2a$10$hash",
		Ciudad:       "Bogotá",
		Servicio:     "plomería",
		Calificacion: entity.CalificacionBuena,
		Verificado:   false,
	}
}

// Dos registros con emails distintos deben leerse en orden de inserción con
// los valores por defecto presentes.
func TestProviderStore_AppendYAll_OrdenDeInsercion(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(testProvider("a@x.com")))
	require.NoError(t, store.Append(testProvider("b@x.com")))

	list, err := store.All()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@x.com", list[0].Email)
	assert.Equal(t, "b@x.com", list[1].Email)
	for _, p := range list {
		assert.Equal(t, entity.CalificacionBuena, p.Calificacion)
		assert.False(t, p.Verificado)
	}
}

// La lectura nunca falla: archivo inexistente produce lista vacía.
func TestProviderStore_All_ArchivoInexistente(t *testing.T) {
	store := newTestStore(t)

	list, err := store.All()
	require.NoError(t, err)
	assert.Empty(t, list)
}

// Las líneas que no parsean se ignoran en lugar de romper el listado.
func TestProviderStore_All_IgnoraLineasCorruptas(t *testing.T) {
	path := filepath.Join(t.TempDir(), "proveedores.jsonl")
	store, err := NewProviderStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Append(testProvider("a@x.com")))
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("esto no es json\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.NoError(t, store.Append(testProvider("b@x.com")))

	list, err := store.All()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a@x.com", list[0].Email)
	assert.Equal(t, "b@x.com", list[1].Email)
}

// Calificar actualiza todos los registros con ese email y deja intactos los demás.
func TestProviderStore_UpdateCalificacion_TodosLosCoincidentes(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(testProvider("dup@x.com")))
	require.NoError(t, store.Append(testProvider("otro@x.com")))
	require.NoError(t, store.Append(testProvider("dup@x.com")))

	n, err := store.UpdateCalificacion("dup@x.com", entity.CalificacionMala)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	list, err := store.All()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, entity.CalificacionMala, list[0].Calificacion)
	assert.Equal(t, entity.CalificacionBuena, list[1].Calificacion)
	assert.Equal(t, entity.CalificacionMala, list[2].Calificacion)
}

func TestProviderStore_UpdateCalificacion_SinCoincidencias(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Append(testProvider("a@x.com")))

	n, err := store.UpdateCalificacion("nadie@x.com", entity.CalificacionMala)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// El mutex serializa los ciclos leer-modificar-reescribir: escrituras
// concurrentes no deben perder registros.
func TestProviderStore_AppendConcurrente(t *testing.T) {
	store := newTestStore(t)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			_ = store.Append(testProvider(fmt.Sprintf("u%d@x.com", i)))
		}(i)
	}
	wg.Wait()

	list, err := store.All()
	require.NoError(t, err)
	assert.Len(t, list, writers)
}
