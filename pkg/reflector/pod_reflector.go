package reflector

import (
	"context"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/watch"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/cache"
)

// DefaultPodLabels matches the pods this spawner created.
var DefaultPodLabels = map[string]string{
	"heritage":  "jupyterhub",
	"component": "singleuser-server",
}

// PodReflector mirrors the spawned notebook pods of one namespace.
type PodReflector struct {
	Reflector
}

func NewPodReflector(clientset kubernetes.Interface, namespace string, podLabels map[string]string) *PodReflector {
	selector := labels.SelectorFromSet(labels.Set(podLabels)).String()

	listerWatcher := &cache.ListWatch{
		ListFunc: func(options metav1.ListOptions) (runtime.Object, error) {
			options.LabelSelector = selector

			return clientset.CoreV1().Pods(namespace).List(context.Background(), options)
		},
		WatchFunc: func(options metav1.ListOptions) (watch.Interface, error) {
			options.LabelSelector = selector

			return clientset.CoreV1().Pods(namespace).Watch(context.Background(), options)
		},
	}

	return &PodReflector{
		Reflector: newReflector(listerWatcher, &corev1.Pod{}, namespace, selector),
	}
}

// Pods returns the current pods keyed by name.
func (reflector *PodReflector) Pods() map[string]*corev1.Pod {
	pods := map[string]*corev1.Pod{}

	for _, storedObject := range reflector.store.List() {
		pod, ok := storedObject.(*corev1.Pod)
		if !ok {
			continue
		}

		pods[pod.Name] = pod
	}

	return pods
}

func (reflector *PodReflector) Get(name string) (*corev1.Pod, bool) {
	storedObject, exists, err := reflector.store.GetByKey(reflector.storeKey(name))
	if err != nil || !exists {
		return nil, false
	}

	pod, ok := storedObject.(*corev1.Pod)
	if !ok {
		return nil, false
	}

	return pod, true
}
