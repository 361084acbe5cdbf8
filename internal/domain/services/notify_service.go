package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"factory-monitor-service/internal/infrastructure/config"
	Logger "factory-monitor-service/pkg/logger"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// InterfaceNotifyService 儀表板刷新通知
type InterfaceNotifyService interface {
	PublishRefresh(ctx context.Context, reason string) error
	Close()
}

// RefreshMessage 發布到 MQTT 的刷新訊息
type RefreshMessage struct {
	Type      string `json:"type"`
	Reason    string `json:"reason"`
	Timestamp int64  `json:"timestamp"`
}

// NewNotifyService 未設定 broker 時回傳不做事的實作
func NewNotifyService(cfg *config.Config) InterfaceNotifyService {
	if !cfg.MQTTEnabled() {
		return noopNotifyService{}
	}
	return NewMQTTNotifyService(cfg)
}

type noopNotifyService struct{}

func (noopNotifyService) PublishRefresh(context.Context, string) error { return nil }
func (noopNotifyService) Close()                                       {}

// DefaultPublishTimeout 連線加上發布的等待上限
const DefaultPublishTimeout = 2 * time.Second

// MQTTNotifyService 以 MQTT 發布刷新訊號
type MQTTNotifyService struct {
	Client  mqtt.Client
	Topic   string
	QoS     byte
	Timeout time.Duration

	mu         sync.Mutex
	connecting mqtt.Token
}

// NewMQTTNotifyService 建立 MQTT 通知服務，連線延後到第一次發布
func NewMQTTNotifyService(cfg *config.Config) *MQTTNotifyService {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.MQTTBrokerURL)
	// 多個實例同時連線時需要不同的 client id
	opts.SetClientID(fmt.Sprintf("%s-%s", cfg.MQTTClientID, uuid.NewString()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(30 * time.Second)
	opts.SetKeepAlive(60 * time.Second)
	opts.SetCleanSession(true)
	if cfg.MQTTUsername != "" {
		opts.SetUsername(cfg.MQTTUsername)
		opts.SetPassword(cfg.MQTTPassword)
	}
	opts.SetConnectionLostHandler(func(_ mqtt.Client, err error) {
		Logger.Warning("[MQTT] 連線中斷: %v", err)
	})

	return &MQTTNotifyService{
		Client:  mqtt.NewClient(opts),
		Topic:   cfg.MQTTRefreshTopic,
		QoS:     byte(cfg.MQTTQoS),
		Timeout: DefaultPublishTimeout,
	}
}

// connectToken 同一時間只有一個連線嘗試，其他呼叫端共用同一個 token
func (s *MQTTNotifyService) connectToken() mqtt.Token {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.connecting == nil || failed(s.connecting) {
		s.connecting = s.Client.Connect()
	}
	return s.connecting
}

func failed(t mqtt.Token) bool {
	select {
	case <-t.Done():
		return t.Error() != nil
	default:
		return false
	}
}

func waitToken(ctx context.Context, t mqtt.Token) error {
	select {
	case <-t.Done():
		return t.Error()
	case <-ctx.Done():
		return fmt.Errorf("[MQTT] 等待逾時: %w", ctx.Err())
	}
}

// 1 PublishRefresh 發布刷新訊號，最多等待 Timeout；失敗只影響即時性，由呼叫端決定是否忽略
func (s *MQTTNotifyService) PublishRefresh(ctx context.Context, reason string) error {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if !s.Client.IsConnected() {
		if err := waitToken(ctx, s.connectToken()); err != nil {
			return err
		}
	}

	payload, err := json.Marshal(RefreshMessage{
		Type:      "refresh",
		Reason:    reason,
		Timestamp: time.Now().UnixMilli(),
	})
	if err != nil {
		return err
	}
	return waitToken(ctx, s.Client.Publish(s.Topic, s.QoS, false, payload))
}

// 2 Close 斷開連線
func (s *MQTTNotifyService) Close() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}
