package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Netcracker/qubership-merchant-performance-service/client"
	"github.com/Netcracker/qubership-merchant-performance-service/view"
	"github.com/buraksezer/olric"
	log "github.com/sirupsen/logrus"
)

const WssDetailsDMapName = "wss-details"

// WssCache holds fetched merchant WSS blocks shared across instances.
type WssCache interface {
	Get(merchantId string) (*view.MerchantWss, error)
	Put(merchantId string, merchant view.MerchantWss, ttl time.Duration) error
	Evict(merchantId string) error
}

func NewOlricWssCache(op client.OlricProvider) WssCache {
	return &olricWssCacheImpl{op: op}
}

type olricWssCacheImpl struct {
	op   client.OlricProvider
	once sync.Once
	dmap *olric.DMap
	err  error
}

func (c *olricWssCacheImpl) getDMap() (*olric.DMap, error) {
	c.once.Do(func() {
		c.dmap, c.err = c.op.Get().NewDMap(WssDetailsDMapName)
		if c.err != nil {
			log.Errorf("Failed to create DMap %s: %s", WssDetailsDMapName, c.err.Error())
		}
	})
	return c.dmap, c.err
}

// Get returns nil without error on a cache miss.
func (c *olricWssCacheImpl) Get(merchantId string) (*view.MerchantWss, error) {
	dm, err := c.getDMap()
	if err != nil {
		return nil, err
	}
	val, err := dm.Get(merchantId)
	if err != nil {
		if errors.Is(err, olric.ErrKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}
	data, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected cached value type %T for merchant %s", val, merchantId)
	}
	var merchant view.MerchantWss
	if err = json.Unmarshal(data, &merchant); err != nil {
		return nil, err
	}
	return &merchant, nil
}

func (c *olricWssCacheImpl) Put(merchantId string, merchant view.MerchantWss, ttl time.Duration) error {
	dm, err := c.getDMap()
	if err != nil {
		return err
	}
	data, err := json.Marshal(merchant)
	if err != nil {
		return err
	}
	return dm.PutEx(merchantId, data, ttl)
}

func (c *olricWssCacheImpl) Evict(merchantId string) error {
	dm, err := c.getDMap()
	if err != nil {
		return err
	}
	err = dm.Delete(merchantId)
	if err != nil && !errors.Is(err, olric.ErrKeyNotFound) {
		return err
	}
	return nil
}
