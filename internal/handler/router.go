package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wepayu/internal/dto"
	"github.com/wepayu/internal/middleware"
)

// Router сопоставляет имена команд скрипта с обработчиками
type Router struct {
	routes  map[string]middleware.HandlerFunc
	logger  *slog.Logger
	handler *PayrollHandler
}

// NewRouter создаёт новый роутер
func NewRouter(handler *PayrollHandler, logger *slog.Logger) *Router {
	return &Router{
		routes:  make(map[string]middleware.HandlerFunc),
		logger:  logger,
		handler: handler,
	}
}

// Setup регистрирует команды и оборачивает диспетчер в middleware
func (r *Router) Setup() middleware.HandlerFunc {
	h := r.handler

	// Система
	r.routes["zerarSistema"] = h.Reset
	r.routes["encerrarSistema"] = h.Shutdown
	r.routes["undo"] = h.Undo
	r.routes["redo"] = h.Redo

	// Empregados
	r.routes["criarEmpregado"] = h.CreateEmployee
	r.routes["getAtributoEmpregado"] = h.GetAttribute
	r.routes["getEmpregadoPorNome"] = h.FindByName
	r.routes["removerEmpregado"] = h.RemoveEmployee
	r.routes["alteraEmpregado"] = h.AlterEmployee

	// Lançamentos
	r.routes["lancaCartao"] = h.PostTimeCard
	r.routes["lancaVenda"] = h.PostSale
	r.routes["lancaTaxaServico"] = h.PostServiceCharge
	r.routes["getHorasNormaisTrabalhadas"] = h.NormalHours
	r.routes["getHorasExtrasTrabalhadas"] = h.ExtraHours
	r.routes["getVendasRealizadas"] = h.Sales
	r.routes["getTaxasServico"] = h.ServiceCharges

	// Folha
	r.routes["criarAgendaDePagamentos"] = h.CreateSchedule
	r.routes["totalFolha"] = h.TotalPayroll
	r.routes["rodaFolha"] = h.RunPayroll
	r.routes["exportaFolhaCSV"] = h.ExportPayrollCSV

	return middleware.Chain(r.dispatch,
		middleware.Recoverer(r.logger),
		middleware.Logger(r.logger),
	)
}

func (r *Router) dispatch(ctx context.Context, cmd *dto.Command) (string, error) {
	route, ok := r.routes[cmd.Name]
	if !ok {
		return "", fmt.Errorf("comando desconhecido: %s", cmd.Name)
	}
	return route(ctx, cmd)
}
