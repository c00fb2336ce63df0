package reconcile

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/simpro-reconcile/internal/domain"
	"github.com/jhoicas/simpro-reconcile/internal/domain/entity"
	"github.com/jhoicas/simpro-reconcile/internal/domain/matching"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
)

// unmatchedSample cantidad de contratos sin vincular que se registran en el log para revisión.
const unmatchedSample = 10

// ReconcileUseCase carga clientes y contratos, vincula cada contrato con a lo sumo un cliente
// y acumula los agregados. Es secuencial: el índice de nombres se construye completo antes de
// emparejar y no cambia durante el emparejamiento.
type ReconcileUseCase struct {
	reader SourceReader
	log    *logger.Logger
	newID  func() string
	now    func() time.Time
}

// Option personaliza el caso de uso (IDs y reloj deterministas en tests).
type Option func(*ReconcileUseCase)

// WithIDGenerator reemplaza el generador de IDs de contrato.
func WithIDGenerator(fn func() string) Option {
	return func(uc *ReconcileUseCase) { uc.newID = fn }
}

// WithClock reemplaza el reloj usado para GeneratedAt.
func WithClock(fn func() time.Time) Option {
	return func(uc *ReconcileUseCase) { uc.now = fn }
}

// NewReconcileUseCase construye el caso de uso.
func NewReconcileUseCase(reader SourceReader, log *logger.Logger, opts ...Option) *ReconcileUseCase {
	uc := &ReconcileUseCase{
		reader: reader,
		log:    log,
		newID:  func() string { return uuid.New().String() },
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run ejecuta la conciliación completa. Solo falla si una fuente no puede leerse.
func (uc *ReconcileUseCase) Run(ctx context.Context) (*Result, error) {
	res := &Result{byID: make(map[string]*entity.Customer), GeneratedAt: uc.now()}
	log := uc.log.With(map[string]any{"corrida": res.GeneratedAt.UTC().Format(time.RFC3339)})

	index, err := uc.loadCustomers(ctx, res, log)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("clientes", len(res.Customers)).
		Int("llaves", index.Len()).
		Int("colisiones", res.NameCollisions).
		Msg("clientes cargados")

	if err := uc.matchContracts(ctx, res, matching.NewMatcher(index)); err != nil {
		return nil, err
	}

	summary := res.Summary()
	log.Info().
		Int("contratos", summary.TotalContracts).
		Int("vinculados", summary.MatchedContracts).
		Int("sin_vincular", summary.UnmatchedContracts).
		Int("filas_omitidas", res.SkippedContractRows).
		Msg("contratos conciliados")
	for i, c := range res.Unmatched {
		if i == unmatchedSample {
			break
		}
		log.Warn().
			Str("cliente", c.CustomerNameInContract).
			Str("contrato", c.ContractName).
			Str("valor", c.Value.StringFixed(2)).
			Msg("contrato sin vincular")
	}
	log.Info().
		Int("core", summary.ServiceTiers[string(entity.TierCore)]).
		Int("assure", summary.ServiceTiers[string(entity.TierAssure)]).
		Int("guardian", summary.ServiceTiers[string(entity.TierGuardian)]).
		Str("valor_total", summary.TotalContractValue.StringFixed(2)).
		Msg("niveles de servicio")
	return res, nil
}

// loadCustomers registra los clientes y construye el índice de nombres (last-write-wins).
// Un ID repetido reemplaza al registro anterior manteniendo su posición.
func (uc *ReconcileUseCase) loadCustomers(ctx context.Context, res *Result, log *logger.Logger) (*matching.NameIndex, error) {
	rows, err := uc.reader.ReadCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: clientes: %w", domain.ErrSourceUnreadable, err)
	}
	index := matching.NewNameIndex()
	positions := make(map[string]int, len(rows))
	for _, row := range rows {
		customer, ok := customerFromRow(row)
		if !ok {
			res.SkippedCustomerRows++
			continue
		}
		if pos, dup := positions[customer.SimproID]; dup {
			res.Customers[pos] = customer
		} else {
			positions[customer.SimproID] = len(res.Customers)
			res.Customers = append(res.Customers, customer)
		}
		res.byID[customer.SimproID] = customer

		if customer.NormalizedName == "" {
			continue
		}
		if prev, collided := index.Put(customer.NormalizedName, customer.SimproID); collided {
			res.NameCollisions++
			log.Debug().
				Str("llave", customer.NormalizedName).
				Str("anterior", prev).
				Str("nuevo", customer.SimproID).
				Msg("colisión de nombre normalizado, gana el último")
		}
	}
	return index, nil
}

// matchContracts vincula cada contrato y acumula los agregados del cliente.
func (uc *ReconcileUseCase) matchContracts(ctx context.Context, res *Result, matcher *matching.Matcher) error {
	rows, err := uc.reader.ReadContracts(ctx)
	if err != nil {
		return fmt.Errorf("%w: contratos: %w", domain.ErrSourceUnreadable, err)
	}
	for _, row := range rows {
		contract, ok := contractFromRow(row, uc.newID())
		if !ok {
			res.SkippedContractRows++
			continue
		}
		res.Contracts = append(res.Contracts, contract)

		m := matcher.Match(contract.CustomerNameInContract)
		customer, exists := res.byID[m.CustomerID]
		if !m.Found() || !exists {
			res.Unmatched = append(res.Unmatched, contract)
			continue
		}
		if err := contract.LinkTo(customer.SimproID, m.Method); err != nil {
			return err
		}
		customer.AttachContract(contract)
	}
	return nil
}
