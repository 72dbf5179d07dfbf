package route

import (
	"encoding/json"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/util/intstr"
)

const (
	// DataAnnotation carries the JSON encoded opaque payload the proxy
	// stored alongside the route; consumers parse it back out verbatim.
	DataAnnotation = "hub.jupyter.org/proxy-data"
	// RouteSpecAnnotation carries the raw routespec the route was built from.
	RouteSpecAnnotation = "hub.jupyter.org/proxy-routespec"
	// TargetAnnotation carries the raw target URL the route forwards to.
	TargetAnnotation = "hub.jupyter.org/proxy-target"

	// RouteLabel marks the three objects of a route as owned by the proxy.
	RouteLabel = "hub.jupyter.org/proxy-route"
)

type Properties struct {
	// Name of the route's endpoints, service and ingress objects.
	Name string `json:"name"`
	// RouteSpec is the host/path prefix the route is exposed under, see
	// SplitRouteSpec for the accepted forms.
	RouteSpec string `json:"routespec"`
	// Target is the URL the route forwards to; host and port are required.
	Target string `json:"target"`
	// Data is an opaque JSON-serializable payload stored on the route.
	Data any `json:"data,omitempty"`
}

// RouteSet is one logical routing unit. The endpoints object binds the
// target address, the service exposes the target port under the route's
// name and the ingress maps host and path onto that service. The three are
// only ever built and submitted together.
type RouteSet struct {
	Endpoints *corev1.Endpoints
	Service   *corev1.Service
	Ingress   *networkingv1.Ingress
}

// Build assembles the route set for one routespec/target pair.
func Build(props Properties) (*RouteSet, error) {
	dataJSON, err := json.Marshal(props.Data)
	if err != nil {
		return nil, errors.Wrap(err, "route data payload is not JSON-serializable")
	}

	host, path := SplitRouteSpec(props.RouteSpec)

	targetIP, targetPort, err := parseTarget(props.Target)
	if err != nil {
		return nil, err
	}

	return &RouteSet{
		Endpoints: buildEndpoints(props, string(dataJSON), targetIP, targetPort),
		Service:   buildService(props, string(dataJSON), targetPort),
		Ingress:   buildIngress(props, string(dataJSON), host, path, targetPort),
	}, nil
}

// buildObjectMeta is called once per object so none of the three share
// label or annotation maps.
func buildObjectMeta(props Properties, dataJSON string) metav1.ObjectMeta {
	return metav1.ObjectMeta{
		Name: props.Name,
		Annotations: map[string]string{
			DataAnnotation:      dataJSON,
			RouteSpecAnnotation: props.RouteSpec,
			TargetAnnotation:    props.Target,
		},
		Labels: map[string]string{
			"heritage":  "jupyterhub",
			"component": "singleuser-server",
			RouteLabel:  "true",
		},
	}
}

func buildEndpoints(props Properties, dataJSON string, targetIP string, targetPort int32) *corev1.Endpoints {
	return &corev1.Endpoints{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Endpoints",
			APIVersion: "v1",
		},
		ObjectMeta: buildObjectMeta(props, dataJSON),
		Subsets: []corev1.EndpointSubset{
			{
				Addresses: []corev1.EndpointAddress{{IP: targetIP}},
				Ports:     []corev1.EndpointPort{{Port: targetPort}},
			},
		},
	}
}

func buildService(props Properties, dataJSON string, targetPort int32) *corev1.Service {
	return &corev1.Service{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Service",
			APIVersion: "v1",
		},
		ObjectMeta: buildObjectMeta(props, dataJSON),
		Spec: corev1.ServiceSpec{
			Ports: []corev1.ServicePort{
				{
					Port:       targetPort,
					TargetPort: intstr.FromInt32(targetPort),
				},
			},
		},
	}
}

func buildIngress(props Properties, dataJSON string, host string, path string, targetPort int32) *networkingv1.Ingress {
	pathType := networkingv1.PathTypeImplementationSpecific

	return &networkingv1.Ingress{
		TypeMeta: metav1.TypeMeta{
			Kind:       "Ingress",
			APIVersion: "networking.k8s.io/v1",
		},
		ObjectMeta: buildObjectMeta(props, dataJSON),
		Spec: networkingv1.IngressSpec{
			Rules: []networkingv1.IngressRule{
				{
					Host: host,
					IngressRuleValue: networkingv1.IngressRuleValue{
						HTTP: &networkingv1.HTTPIngressRuleValue{
							Paths: []networkingv1.HTTPIngressPath{
								{
									Path:     path,
									PathType: &pathType,
									Backend: networkingv1.IngressBackend{
										Service: &networkingv1.IngressServiceBackend{
											Name: props.Name,
											Port: networkingv1.ServiceBackendPort{
												Number: targetPort,
											},
										},
									},
								},
							},
						},
					},
				},
			},
		},
	}
}
