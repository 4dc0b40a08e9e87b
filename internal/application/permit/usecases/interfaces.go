package usecases

import (
	"context"

	"portico/internal/application/permit/dto"
)

type CreatePermitExecutor interface {
	Execute(ctx context.Context, cmd CreatePermitCommand) (*dto.PermitDTO, error)
}

type GetPermitExecutor interface {
	Execute(ctx context.Context, query GetPermitQuery) (*dto.PermitDTO, error)
}

type UpdatePermitExecutor interface {
	Execute(ctx context.Context, cmd UpdatePermitCommand) (*dto.PermitDTO, error)
}

type TogglePermitExecutor interface {
	Execute(ctx context.Context, cmd TogglePermitCommand) (*TogglePermitResult, error)
}

type CheckInExecutor interface {
	Execute(ctx context.Context, cmd CheckInCommand) (*MovementResult, error)
}

type CheckOutExecutor interface {
	Execute(ctx context.Context, cmd CheckOutCommand) (*MovementResult, error)
}

type GateCheckExecutor interface {
	Execute(ctx context.Context, query GateCheckQuery) (*dto.GateVerdictDTO, error)
}

type ListPermitsExecutor interface {
	Execute(ctx context.Context, query ListPermitsQuery) (*ListPermitsResult, error)
}
