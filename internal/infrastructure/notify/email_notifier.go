// Package notify implementa los adaptadores de notificación de stock.
// Todas las notificaciones son best-effort: el motor de stock registra el
// error y sigue; nunca se revierte un movimiento por un fallo de envío.
package notify

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/cafe-stock-api/internal/application/stock"
	"github.com/jhoicas/cafe-stock-api/internal/domain/entity"
	"github.com/jhoicas/cafe-stock-api/pkg/config"
)

var _ stock.Notifier = (*EmailNotifier)(nil)

// EmailNotifier envía alertas de stock por correo usando gomail (SMTP).
type EmailNotifier struct {
	cfg config.SMTPConfig
}

// NewEmailNotifier construye el notificador con la configuración SMTP.
func NewEmailNotifier(cfg config.SMTPConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

// NotifyLowStock envía la alerta de producto bajo umbral al encargado de compras.
func (n *EmailNotifier) NotifyLowStock(_ context.Context, product *entity.Product) error {
	subject := fmt.Sprintf("Stock bajo: %s (%s)", product.Name, product.SKU)
	body := fmt.Sprintf(
		"El producto %s (%s) quedó con %d %s en stock; el umbral de reposición es %d.\nFaltan %d unidades para alcanzarlo.",
		product.Name, product.SKU, product.CurrentStock, product.UnitMeasure,
		product.ReorderLevel, product.Deficit(),
	)
	return n.send(subject, body)
}

// NotifyReorderApplied envía el resumen de una reposición masiva.
func (n *EmailNotifier) NotifyReorderApplied(_ context.Context, reorderedCount int, totalQuantity int64) error {
	subject := "Reposición automática aplicada"
	body := fmt.Sprintf(
		"Se repusieron %d producto(s) bajo umbral por un total de %d unidades.",
		reorderedCount, totalQuantity,
	)
	return n.send(subject, body)
}

func (n *EmailNotifier) send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.cfg.From)
	msg.SetHeader("To", n.cfg.To)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.User, n.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("enviar correo: %w", err)
	}
	return nil
}
