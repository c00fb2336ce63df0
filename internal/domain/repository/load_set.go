package repository

import "github.com/jhoicas/simpro-reconcile/internal/domain/entity"

// LoadSet subconjunto del resultado que se persiste.
type LoadSet struct {
	Customers []*entity.Customer
	Contracts []*entity.Contract
}

// SelectLoadable elige los clientes con al menos un contrato vinculado (una vez por ID de SimPro)
// y los contratos vinculados a alguno de ellos, conservando el orden de entrada.
func SelectLoadable(customers []*entity.Customer, contracts []*entity.Contract) LoadSet {
	var set LoadSet
	seen := make(map[string]struct{}, len(customers))
	for _, c := range customers {
		if !c.HasContracts() {
			continue
		}
		if _, dup := seen[c.SimproID]; dup {
			continue
		}
		seen[c.SimproID] = struct{}{}
		set.Customers = append(set.Customers, c)
	}
	for _, k := range contracts {
		if _, ok := seen[k.CustomerID()]; ok && k.IsMatched() {
			set.Contracts = append(set.Contracts, k)
		}
	}
	return set
}
