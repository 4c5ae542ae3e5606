// Package jsonfile implementa el almacén de proveedores sobre un archivo de
// texto plano con un registro JSON por línea, en orden de inserción.
package jsonfile

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gabodev/marketplace-api/internal/domain/entity"
	"github.com/gabodev/marketplace-api/internal/domain/repository"
)

var _ repository.ProviderStore = (*ProviderStore)(nil)

// ProviderStore almacén de archivo plano. Un mutex serializa los ciclos
// leer-modificar-reescribir: sin él, dos Calificar concurrentes perderían
// actualizaciones.
type ProviderStore struct {
	path string
	mu   sync.Mutex
}

// NewProviderStore crea el almacén sobre la ruta dada, creando el directorio
// contenedor si no existe. El archivo se crea en el primer Append.
func NewProviderStore(path string) (*ProviderStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio de datos: %w", err)
		}
	}
	return &ProviderStore{path: path}, nil
}

// Append agrega un registro como una línea JSON al final del archivo.
func (s *ProviderStore) Append(p *entity.Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("serializar proveedor: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("abrir archivo de proveedores: %w", err)
	}
	defer f.Close()
	if _, err := f.Write(append(line, '\n')); err != nil {
		return fmt.Errorf("escribir proveedor: %w", err)
	}
	return nil
}

// All devuelve todos los registros en orden de inserción. Política "la lectura
// nunca falla": archivo ausente o ilegible produce lista vacía, y las líneas
// que no parsean se ignoran.
func (s *ProviderStore) All() ([]*entity.Provider, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll(), nil
}

// UpdateCalificacion cambia la calificación de todos los registros cuyo email
// coincide y reescribe el archivo completo. Devuelve cuántos se actualizaron.
func (s *ProviderStore) UpdateCalificacion(email, calificacion string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.readAll()
	updated := 0
	for _, p := range list {
		if p.Email == email {
			p.Calificacion = calificacion
			updated++
		}
	}
	if updated == 0 {
		return 0, nil
	}
	if err := s.writeAll(list); err != nil {
		return 0, err
	}
	return updated, nil
}

func (s *ProviderStore) readAll() []*entity.Provider {
	f, err := os.Open(s.path)
	if err != nil {
		return nil
	}
	defer f.Close()

	var list []*entity.Provider
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var p entity.Provider
		if err := json.Unmarshal(line, &p); err != nil {
			continue
		}
		list = append(list, &p)
	}
	return list
}

func (s *ProviderStore) writeAll(list []*entity.Provider) error {
	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("abrir archivo temporal: %w", err)
	}
	w := bufio.NewWriter(f)
	for _, p := range list {
		line, err := json.Marshal(p)
		if err != nil {
			f.Close()
			return fmt.Errorf("serializar proveedor: %w", err)
		}
		if _, err := w.Write(append(line, '\n')); err != nil {
			f.Close()
			return fmt.Errorf("escribir proveedor: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("flush: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("reemplazar archivo de proveedores: %w", err)
	}
	return nil
}
