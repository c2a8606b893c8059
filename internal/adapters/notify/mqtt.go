package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/renato0307/despertar/internal/config"
	"github.com/renato0307/despertar/internal/domain"
	"github.com/renato0307/despertar/internal/logging"
	"github.com/renato0307/despertar/internal/ports"
)

const (
	defaultTopicPrefix = "despertar"
	publishQueueSize   = 64
	publishTimeout     = 5 * time.Second
)

// FiredMessage is the payload published when an alarm fires
type FiredMessage struct {
	AlarmID string    `json:"alarmId"`
	FiredAt time.Time `json:"firedAt"`
	Label   string    `json:"label,omitempty"`
	Message string    `json:"message"`
	SoundID string    `json:"soundId"`
	Time    string    `json:"time"`
}

// NoticeMessage is the payload published for transient notices
type NoticeMessage struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// outgoing is a payload waiting to be published
type outgoing struct {
	data  []byte
	topic string
}

// MQTTNotifier publishes alarm events to an MQTT broker and listens for remote
// stop requests. Publishing happens on a background worker; when its queue is
// full the event is dropped.
type MQTTNotifier struct {
	client    mqtt.Client
	closeOnce sync.Once
	done      chan struct{}
	mu        sync.RWMutex
	prefix    string
	queue     chan outgoing
	timeout   time.Duration
}

// Verify interface compliance at compile time
var _ ports.Notifier = (*MQTTNotifier)(nil)

// ConnectMQTT connects to the broker described by cfg
func ConnectMQTT(cfg *config.MQTTSettings) (*MQTTNotifier, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)

	clientID := cfg.ClientID
	if clientID == "" {
		clientID = "despertar"
	}
	opts.SetClientID(clientID)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.Password != "" {
		opts.SetPassword(cfg.Password)
	}

	opts.SetAutoReconnect(true)
	opts.SetCleanSession(true)
	opts.SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}

	logging.Logger.Info("Connected to MQTT broker", "broker", cfg.Broker)
	return NewMQTTNotifier(client, cfg.TopicPrefix), nil
}

// NewMQTTNotifier wraps a connected client and starts the publish worker
func NewMQTTNotifier(client mqtt.Client, prefix string) *MQTTNotifier {
	prefix = strings.TrimRight(prefix, "/")
	if prefix == "" {
		prefix = defaultTopicPrefix
	}
	n := &MQTTNotifier{
		client:  client,
		done:    make(chan struct{}),
		prefix:  prefix,
		queue:   make(chan outgoing, publishQueueSize),
		timeout: publishTimeout,
	}
	go n.run(n.queue)
	return n
}

// FiredTopic is where fire events are published
func (n *MQTTNotifier) FiredTopic() string { return n.prefix + "/alarm/fired" }

// NoticeTopic is where notices are published
func (n *MQTTNotifier) NoticeTopic() string { return n.prefix + "/notice" }

// StopTopic is where remote stop requests arrive
func (n *MQTTNotifier) StopTopic() string { return n.prefix + "/alarm/stop" }

// AlarmFired implements Notifier.AlarmFired
func (n *MQTTNotifier) AlarmFired(ctx context.Context, event domain.FireEvent) {
	n.publish(n.FiredTopic(), FiredMessage{
		AlarmID: event.Alarm.ID,
		FiredAt: event.FiredAt.UTC(),
		Label:   event.Alarm.Label,
		Message: event.Message(),
		SoundID: event.Alarm.SoundID,
		Time:    event.Alarm.Time.String(),
	})
}

// Notify implements Notifier.Notify
func (n *MQTTNotifier) Notify(ctx context.Context, notice domain.Notice) {
	n.publish(n.NoticeTopic(), NoticeMessage{Level: string(notice.Level), Message: notice.Message})
}

// OnStop subscribes to the stop topic and calls stop for every message
func (n *MQTTNotifier) OnStop(stop func()) error {
	token := n.client.Subscribe(n.StopTopic(), 1, func(_ mqtt.Client, msg mqtt.Message) {
		logging.Logger.Info("Remote stop requested", "topic", msg.Topic())
		stop()
	})
	if token.Wait() && token.Error() != nil {
		return fmt.Errorf("failed to subscribe to topic %s: %w", n.StopTopic(), token.Error())
	}
	return nil
}

// Close drains queued events, waiting at most one publish timeout, then
// disconnects from the broker
func (n *MQTTNotifier) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		close(n.queue)
		n.queue = nil
		n.mu.Unlock()

		select {
		case <-n.done:
		case <-time.After(n.timeout):
			logging.Logger.Warn("MQTT events still queued at shutdown")
		}
		n.client.Disconnect(250)
	})
}

// publish encodes payload and hands it to the worker without waiting
func (n *MQTTNotifier) publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		logging.Logger.Error("Failed to encode MQTT payload", "topic", topic, "error", err)
		return
	}

	n.mu.RLock()
	defer n.mu.RUnlock()

	if n.queue == nil {
		return
	}
	select {
	case n.queue <- outgoing{data: data, topic: topic}:
	default:
		logging.Logger.Warn("MQTT publish queue full, dropping event", "topic", topic)
	}
}

func (n *MQTTNotifier) run(queue <-chan outgoing) {
	defer close(n.done)

	for msg := range queue {
		token := n.client.Publish(msg.topic, 1, false, msg.data)
		if !token.WaitTimeout(n.timeout) {
			logging.Logger.Warn("MQTT publish timed out", "topic", msg.topic)
			continue
		}
		if token.Error() != nil {
			logging.Logger.Warn("Failed to publish to MQTT", "topic", msg.topic, "error", token.Error())
		}
	}
}
