package billingsync

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
	billingRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/billing"
	petClient "github.com/m04kA/DWS-ScheduleService/internal/integrations/petservice"
	"github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

// Service мост между завершенными прогулками и биллинговым леджером
// Гарантия "не больше одной строки на прогулку" держится на натуральном ключе
// (собака, дата, время начала): сначала поиск, затем вставка, и уникальный
// индекс как последняя линия обороны от гонки
type Service struct {
	assignmentRepo AssignmentRepository
	slotsRepo      SlotsRepository
	billingRepo    BillingRepository
	petClient      PetServiceClient
	txManager      TransactionManager
	engine         domain.EngineConfig
	logger         Logger
}

// NewService создает новый экземпляр сервиса синхронизации биллинга
func NewService(
	assignmentRepo AssignmentRepository,
	slotsRepo SlotsRepository,
	billingRepo BillingRepository,
	petClient PetServiceClient,
	txManager TransactionManager,
	engine domain.EngineConfig,
	logger Logger,
) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		slotsRepo:      slotsRepo,
		billingRepo:    billingRepo,
		petClient:      petClient,
		txManager:      txManager,
		engine:         engine,
		logger:         logger,
	}
}

// SyncOne синхронизирует одно завершенное назначение в леджер
// Операция идемпотентна: повторный вызов находит строку по натуральному ключу
// и не создает дубликат
func (s *Service) SyncOne(ctx context.Context, assignmentID int64) (*models.SyncResult, error) {
	s.logger.Info("SyncOne: syncing assignment id=%d", assignmentID)

	a, err := s.assignmentRepo.GetByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("SyncOne: assignment id=%d not found", assignmentID)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("SyncOne: repository error for assignment id=%d: %v", assignmentID, err)
		return nil, fmt.Errorf("%w: SyncOne - repository error: %v", ErrInternal, err)
	}

	if !a.Completed {
		s.logger.Warn("SyncOne: assignment id=%d is not completed", assignmentID)
		return nil, ErrNotCompleted
	}

	grid, err := s.loadGrid(ctx, a.WeekRef())
	if err != nil {
		return nil, err
	}

	return s.syncAssignment(ctx, a, grid)
}

// SyncWeek синхронизирует все завершенные назначения недели одним батчем
// Каждый элемент обрабатывается в собственной транзакции: ошибка одного
// назначения не откатывает остальные
func (s *Service) SyncWeek(ctx context.Context, year, week int) (*models.WeekSyncResult, error) {
	s.logger.Info("SyncWeek: syncing year=%d, week=%d", year, week)

	weekRef := domain.WeekRef{Year: year, Week: week}
	if err := weekRef.Validate(); err != nil {
		s.logger.Warn("SyncWeek: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	completed, err := s.assignmentRepo.GetCompletedByWeek(ctx, year, week)
	if err != nil {
		s.logger.Error("SyncWeek: failed to get completed assignments: %v", err)
		return nil, fmt.Errorf("%w: SyncWeek - repository error: %v", ErrInternal, err)
	}

	grid, err := s.loadGrid(ctx, weekRef)
	if err != nil {
		return nil, err
	}

	result := &models.WeekSyncResult{
		Year:  year,
		Week:  week,
		Total: len(completed),
		Items: make([]models.SyncItem, 0, len(completed)),
	}

	for _, a := range completed {
		item := models.SyncItem{
			AssignmentID: a.ID,
			SlotID:       a.SlotID.String(),
			DogID:        a.DogID,
		}

		one, err := s.syncAssignment(ctx, a, grid)
		if err != nil {
			s.logger.Error("SyncWeek: assignment id=%d failed: %v", a.ID, err)
			msg := err.Error()
			item.Error = &msg
			result.Failed++
		} else {
			item.Created = one.Created
			item.AlreadySynced = one.AlreadySynced
			if one.Created {
				result.Created++
			}
			if one.AlreadySynced {
				result.AlreadySynced++
			}
		}

		result.Items = append(result.Items, item)
	}

	s.logger.Info("SyncWeek: %s done, total=%d, created=%d, alreadySynced=%d, failed=%d",
		weekRef, result.Total, result.Created, result.AlreadySynced, result.Failed)

	return result, nil
}

// FindUnsynced возвращает завершенные назначения недели, для которых в леджере
// нет строки с ожидаемым натуральным ключом
func (s *Service) FindUnsynced(ctx context.Context, year, week int) (*models.UnsyncedResult, error) {
	s.logger.Info("FindUnsynced: checking year=%d, week=%d", year, week)

	weekRef := domain.WeekRef{Year: year, Week: week}
	if err := weekRef.Validate(); err != nil {
		s.logger.Warn("FindUnsynced: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	completed, err := s.assignmentRepo.GetCompletedByWeek(ctx, year, week)
	if err != nil {
		s.logger.Error("FindUnsynced: failed to get completed assignments: %v", err)
		return nil, fmt.Errorf("%w: FindUnsynced - repository error: %v", ErrInternal, err)
	}

	result := &models.UnsyncedResult{Year: year, Week: week, Items: []models.UnsyncedItem{}}
	if len(completed) == 0 {
		return result, nil
	}

	grid, err := s.loadGrid(ctx, weekRef)
	if err != nil {
		return nil, err
	}

	monday := weekRef.Monday()
	friday := weekRef.DateOf(domain.Friday)
	records, err := s.billingRepo.ListByDateRange(ctx, monday, friday)
	if err != nil {
		s.logger.Error("FindUnsynced: failed to list billing records: %v", err)
		return nil, fmt.Errorf("%w: FindUnsynced - repository error: %v", ErrInternal, err)
	}

	synced := make(map[string]bool, len(records))
	for _, r := range records {
		synced[keyString(r.Key())] = true
	}

	for _, a := range completed {
		slot := grid.Slot(a.SlotID)
		if slot == nil {
			s.logger.Error("FindUnsynced: assignment id=%d references unknown slot %s", a.ID, a.SlotID)
			continue
		}

		key := domain.BillingKey{
			DogID:       a.DogID,
			ServiceDate: weekRef.DateOf(slot.Day),
			StartTime:   slot.WalkStartTime,
		}
		if !synced[keyString(key)] {
			result.Items = append(result.Items, models.UnsyncedItem{
				AssignmentID: a.ID,
				DogID:        a.DogID,
				SlotID:       a.SlotID.String(),
				ServiceDate:  key.ServiceDate,
				StartTime:    key.StartTime,
			})
		}
	}

	s.logger.Info("FindUnsynced: %s has %d completed, %d unsynced", weekRef, len(completed), len(result.Items))

	return result, nil
}

// syncAssignment выполняет идемпотентную вставку одной строки леджера
// Поиск и вставка идут в одной транзакции; конфликт уникального индекса
// трактуется как проигранная гонка, а не как ошибка
func (s *Service) syncAssignment(ctx context.Context, a *domain.Assignment, grid *domain.WeekView) (*models.SyncResult, error) {
	if !a.Completed {
		return nil, ErrNotCompleted
	}

	record, err := s.resolveLine(ctx, a, grid)
	if err != nil {
		return nil, err
	}

	result := &models.SyncResult{AssignmentID: a.ID}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Поиск по натуральному ключу с блокировкой (FOR UPDATE)
		existing, err := s.billingRepo.FindByKey(txCtx, record.Key())
		if err == nil {
			result.AlreadySynced = true
			result.Record = existing
			return nil
		}
		if !errors.Is(err, billingRepo.ErrRecordNotFound) {
			return fmt.Errorf("%w: syncAssignment - find by key: %v", ErrInternal, err)
		}

		inserted, err := s.billingRepo.Insert(txCtx, record)
		if err != nil {
			if errors.Is(err, billingRepo.ErrDuplicateRecord) {
				// Параллельная синхронизация успела первой
				existing, ferr := s.billingRepo.FindByKey(txCtx, record.Key())
				if ferr != nil {
					return fmt.Errorf("%w: syncAssignment - refetch after duplicate: %v", ErrInternal, ferr)
				}
				result.AlreadySynced = true
				result.Record = existing
				return nil
			}
			return fmt.Errorf("%w: syncAssignment - insert: %v", ErrInternal, err)
		}

		result.Created = true
		result.Record = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.Created {
		s.logger.Info("syncAssignment: created billable record id=%d ref=%s for assignment id=%d",
			result.Record.ID, result.Record.ExternalRef, a.ID)
	} else {
		s.logger.Info("syncAssignment: assignment id=%d already synced as record id=%d", a.ID, result.Record.ID)
	}

	return result, nil
}

// resolveLine собирает строку леджера из назначения и эффективного слота
func (s *Service) resolveLine(ctx context.Context, a *domain.Assignment, grid *domain.WeekView) (*domain.BillableRecord, error) {
	slot := grid.Slot(a.SlotID)
	if slot == nil {
		return nil, fmt.Errorf("%w: assignment id=%d references unknown slot %s", ErrInternal, a.ID, a.SlotID)
	}

	tariff, ok := s.engine.TariffFor(slot.WalkType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownWalkType, slot.WalkType)
	}

	price := tariff.UnitPrice
	if a.OverridePrice != nil {
		price = *a.OverridePrice
	}

	dog, err := s.petClient.GetDog(ctx, a.DogID)
	if err != nil {
		if errors.Is(err, petClient.ErrDogNotFound) {
			return nil, fmt.Errorf("%w: dog id=%d", ErrDogNotFound, a.DogID)
		}
		return nil, fmt.Errorf("%w: resolveLine - get dog id=%d: %v", ErrInternal, a.DogID, err)
	}

	weekRef := a.WeekRef()
	return &domain.BillableRecord{
		ExternalRef:     uuid.NewString(),
		DogID:           a.DogID,
		OwnerID:         dog.OwnerID,
		ServiceCategory: tariff.ServiceCategory,
		ServiceDate:     weekRef.DateOf(slot.Day),
		StartTime:       slot.WalkStartTime,
		DurationMinutes: tariff.DurationMinutes,
		UnitPrice:       price,
		Quantity:        1,
		Status:          domain.BillableDone,
		Provenance:      fmt.Sprintf("%s %s", a.SlotID, weekRef),
	}, nil
}

// loadGrid материализует сетку недели без назначений: для биллинга нужны
// только эффективные тип прогулки и время старта каждого слота
func (s *Service) loadGrid(ctx context.Context, weekRef domain.WeekRef) (*domain.WeekView, error) {
	templates, err := s.slotsRepo.GetTemplates(ctx)
	if err != nil {
		s.logger.Error("billingsync: failed to get templates: %v", err)
		return nil, fmt.Errorf("%w: failed to get templates: %v", ErrInternal, err)
	}

	overrides, err := s.slotsRepo.GetOverrides(ctx, weekRef.Year, weekRef.Week)
	if err != nil {
		s.logger.Error("billingsync: failed to get overrides: %v", err)
		return nil, fmt.Errorf("%w: failed to get overrides: %v", ErrInternal, err)
	}

	return domain.AssembleWeek(weekRef, templates, overrides, nil, nil), nil
}

func keyString(key domain.BillingKey) string {
	return fmt.Sprintf("%d|%s|%s", key.DogID, key.ServiceDate.Format(domain.DateFormat), key.StartTime)
}
