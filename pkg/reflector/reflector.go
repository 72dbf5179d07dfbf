package reflector

import (
	"context"

	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/cache"
)

// Reflector keeps a local, continuously updated copy of one label-selected
// resource set in a single namespace. Relisting, watch retries and backoff
// are handled by client-go's cache machinery, the store is safe to read
// from any goroutine.
type Reflector struct {
	store      cache.Store
	controller cache.Controller
	namespace  string
	selector   string
}

func newReflector(listerWatcher cache.ListerWatcher, exampleObject runtime.Object, namespace string, selector string) Reflector {
	store, controller := cache.NewInformer(listerWatcher, exampleObject, 0, cache.ResourceEventHandlerFuncs{})

	return Reflector{
		store:      store,
		controller: controller,
		namespace:  namespace,
		selector:   selector,
	}
}

// Start runs the watch until the context is cancelled.
func (reflector *Reflector) Start(ctx context.Context) {
	log.Info("watching for resources", "selector", reflector.selector, "namespace", reflector.namespace)

	go reflector.controller.Run(ctx.Done())
}

// WaitForSync blocks until the first full list is stored, so callers never
// race a poll against an empty cache.
func (reflector *Reflector) WaitForSync(ctx context.Context) error {
	if !cache.WaitForCacheSync(ctx.Done(), reflector.controller.HasSynced) {
		return errors.New("reflector cache did not sync")
	}

	return nil
}

func (reflector *Reflector) storeKey(name string) string {
	if reflector.namespace == "" {
		return name
	}

	return reflector.namespace + "/" + name
}
