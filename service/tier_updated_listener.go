package service

import (
	"encoding/json"
	"sync"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/utils"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	"github.com/buraksezer/olric"
	log "github.com/sirupsen/logrus"
)

const TierUpdatedTopicName = "wss-tier-updated"

type TierUpdatedListener interface {
	Start()
	Publish(merchantId string) error
}

func NewTierUpdatedListener(op client.OlricProvider, wssService WssService) TierUpdatedListener {
	l := tierUpdatedListenerImpl{
		op:         op,
		wssService: wssService,
	}
	l.isReadyWg.Add(1)
	return &l
}

type tierUpdatedListenerImpl struct {
	op               client.OlricProvider
	wssService       WssService
	tierUpdatedTopic *olric.DTopic
	isReadyWg        sync.WaitGroup
}

func (p *tierUpdatedListenerImpl) Start() {
	utils.SafeAsync(func() {
		p.initTierUpdatedDTopic()
	})
}

// Publish tells every instance to drop its cached WSS block of the merchant.
func (p *tierUpdatedListenerImpl) Publish(merchantId string) error {
	p.isReadyWg.Wait()
	if p.tierUpdatedTopic == nil {
		return p.wssService.EvictMerchant(merchantId)
	}
	data, err := json.Marshal(view.TierUpdatedNotification{MerchantId: merchantId})
	if err != nil {
		return err
	}
	return p.tierUpdatedTopic.Publish(string(data))
}

func (p *tierUpdatedListenerImpl) listen(message olric.DTopicMessage) {
	str, ok := message.Message.(string)
	if !ok {
		log.Warnf("TierUpdatedListener.listen: unexpected event %+v, will not be processed", message.Message)
		return
	}

	var notification view.TierUpdatedNotification
	err := json.Unmarshal([]byte(str), &notification)
	if err != nil {
		log.Errorf("TierUpdatedListener.listen: error unmarshalling tier update notification: %v", err)
		return
	}
	if notification.MerchantId == "" {
		log.Warnf("TierUpdatedListener.listen: notification without merchant id: %s", str)
		return
	}

	if err = p.wssService.EvictMerchant(notification.MerchantId); err != nil {
		log.Errorf("TierUpdatedListener.listen: failed to evict WSS details of merchant %s: %v", notification.MerchantId, err)
		return
	}
	log.Debugf("WSS details of merchant %s evicted after tier update", notification.MerchantId)
}

func (p *tierUpdatedListenerImpl) initTierUpdatedDTopic() {
	defer p.isReadyWg.Done()

	topic, err := p.op.Get().NewDTopic(TierUpdatedTopicName, 10000, olric.UnorderedDelivery)
	if err != nil {
		log.Errorf("Failed to create DTopic %s: %s", TierUpdatedTopicName, err.Error())
		return
	}

	_, err = topic.AddListener(p.listen)
	if err != nil {
		log.Errorf("Failed to add listener to DTopic %s: %s", TierUpdatedTopicName, err.Error())
		return
	}
	p.tierUpdatedTopic = topic
}
