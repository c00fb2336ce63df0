package matching

// NameIndex mapea nombre normalizado -> ID externo del cliente, conservando el orden de inserción.
//
// Política de colisión: si dos clientes normalizan a la misma llave gana el último (last-write-wins)
// y la llave conserva la posición de su primera inserción. El cliente anterior deja de ser alcanzable
// por nombre; no se intenta resolver la colisión.
type NameIndex struct {
	ids  map[string]string
	keys []string
}

// NewNameIndex construye un índice vacío.
func NewNameIndex() *NameIndex {
	return &NameIndex{ids: make(map[string]string)}
}

// Put registra la llave. Devuelve el ID desplazado si la llave ya existía con otro cliente.
func (ix *NameIndex) Put(key, customerID string) (replaced string, collided bool) {
	prev, ok := ix.ids[key]
	if !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.ids[key] = customerID
	return prev, ok && prev != customerID
}

// Lookup búsqueda exacta por llave normalizada.
func (ix *NameIndex) Lookup(key string) (string, bool) {
	id, ok := ix.ids[key]
	return id, ok
}

// Len cantidad de llaves distintas.
func (ix *NameIndex) Len() int { return len(ix.keys) }

// Each recorre las llaves en orden de inserción hasta que fn devuelva false.
func (ix *NameIndex) Each(fn func(key, customerID string) bool) {
	for _, k := range ix.keys {
		if !fn(k, ix.ids[k]) {
			return
		}
	}
}
