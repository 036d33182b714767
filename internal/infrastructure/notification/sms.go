package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/caramelo-app/caramelo-api-sub001/pkg/config"
	"github.com/caramelo-app/caramelo-api-sub001/pkg/logger"
)

// SMSSender envia SMS via API REST da Twilio.
type SMSSender struct {
	cfg        config.SMSConfig
	httpClient *http.Client
	log        *logger.Logger
}

// NewSMSSender constrói o adaptador de SMS.
func NewSMSSender(cfg config.SMSConfig, log *logger.Logger) *SMSSender {
	return &SMSSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
	}
}

// Send envia uma mensagem para o telefone de destino (E.164 sem "+").
// Sem credenciais configuradas o envio é pulado com warning — útil em dev.
func (s *SMSSender) Send(ctx context.Context, to, body string) error {
	if s.cfg.AccountSID == "" || s.cfg.AuthToken == "" {
		s.log.Warn().Str("to", to).Msg("sms sem credenciais configuradas, envio pulado")
		return nil
	}

	apiURL := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", "+"+to)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("sms: criar requisição: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.log.Error().Err(err).Str("to", to).Msg("falha ao enviar sms")
		return fmt.Errorf("sms: enviar: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var apiErr struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		s.log.Error().Int("status", resp.StatusCode).Int("code", apiErr.Code).Msg("erro da API de sms")
		return fmt.Errorf("sms: provedor retornou %d: %s", resp.StatusCode, apiErr.Message)
	}

	s.log.Debug().Str("to", to).Msg("sms enviado")
	return nil
}
