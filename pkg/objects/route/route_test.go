package route

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestProperties() Properties {
	return Properties{
		Name:      "jupyter-alice",
		RouteSpec: "/user/alice/",
		Target:    "http://10.0.0.5:8000",
		Data: map[string]any{
			"user":      "alice",
			"server_id": "f00d",
		},
	}
}

func TestSplitRouteSpec(t *testing.T) {
	t.Run("/foo/bar => no host, full path", func(t *testing.T) {
		host, path := SplitRouteSpec("/foo/bar")

		assert.Empty(t, host)
		assert.Equal(t, "/foo/bar", path)
	})
	t.Run("example.com/foo => host and path", func(t *testing.T) {
		host, path := SplitRouteSpec("example.com/foo")

		assert.Equal(t, "example.com", host)
		assert.Equal(t, "/foo", path)
	})
	t.Run("example.com => host only, empty path", func(t *testing.T) {
		// a routespec without any slash keeps the whole string as host
		host, path := SplitRouteSpec("example.com")

		assert.Equal(t, "example.com", host)
		assert.Empty(t, path)
	})
}

func TestBuildRouteSet(t *testing.T) {
	t.Run("all three objects reference the target port", func(t *testing.T) {
		routeSet, err := Build(getTestProperties())

		require.NoError(t, err)

		require.Len(t, routeSet.Endpoints.Subsets, 1)
		subset := routeSet.Endpoints.Subsets[0]
		require.Len(t, subset.Addresses, 1)
		assert.Equal(t, "10.0.0.5", subset.Addresses[0].IP)
		require.Len(t, subset.Ports, 1)
		assert.Equal(t, int32(8000), subset.Ports[0].Port)

		require.Len(t, routeSet.Service.Spec.Ports, 1)
		servicePort := routeSet.Service.Spec.Ports[0]
		assert.Equal(t, int32(8000), servicePort.Port)
		assert.Equal(t, int32(8000), servicePort.TargetPort.IntVal)

		require.Len(t, routeSet.Ingress.Spec.Rules, 1)
		paths := routeSet.Ingress.Spec.Rules[0].HTTP.Paths
		require.Len(t, paths, 1)
		assert.Equal(t, "jupyter-alice", paths[0].Backend.Service.Name)
		assert.Equal(t, int32(8000), paths[0].Backend.Service.Port.Number)
	})
	t.Run("rooted routespec => ingress rule without host", func(t *testing.T) {
		routeSet, err := Build(getTestProperties())

		require.NoError(t, err)
		rule := routeSet.Ingress.Spec.Rules[0]
		assert.Empty(t, rule.Host)
		assert.Equal(t, "/user/alice/", rule.HTTP.Paths[0].Path)
	})
	t.Run("hosted routespec => ingress rule with host", func(t *testing.T) {
		props := getTestProperties()
		props.RouteSpec = "hub.example.com/user/alice/"

		routeSet, err := Build(props)

		require.NoError(t, err)
		rule := routeSet.Ingress.Spec.Rules[0]
		assert.Equal(t, "hub.example.com", rule.Host)
		assert.Equal(t, "/user/alice/", rule.HTTP.Paths[0].Path)
	})
	t.Run("metadata is identical but not shared", func(t *testing.T) {
		routeSet, err := Build(getTestProperties())

		require.NoError(t, err)
		assert.Equal(t, routeSet.Endpoints.ObjectMeta, routeSet.Service.ObjectMeta)
		assert.Equal(t, routeSet.Service.ObjectMeta, routeSet.Ingress.ObjectMeta)

		routeSet.Endpoints.Annotations[TargetAnnotation] = "mutated"

		assert.Equal(t, "http://10.0.0.5:8000", routeSet.Service.Annotations[TargetAnnotation])
		assert.Equal(t, "http://10.0.0.5:8000", routeSet.Ingress.Annotations[TargetAnnotation])
	})
	t.Run("raw routespec and target are embedded verbatim", func(t *testing.T) {
		routeSet, err := Build(getTestProperties())

		require.NoError(t, err)
		assert.Equal(t, "/user/alice/", routeSet.Service.Annotations[RouteSpecAnnotation])
		assert.Equal(t, "http://10.0.0.5:8000", routeSet.Service.Annotations[TargetAnnotation])
		assert.Equal(t, "true", routeSet.Service.Labels[RouteLabel])
		assert.Equal(t, "jupyterhub", routeSet.Service.Labels["heritage"])
	})
	t.Run("data payload round-trips through the annotation", func(t *testing.T) {
		props := getTestProperties()
		routeSet, err := Build(props)

		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal([]byte(routeSet.Ingress.Annotations[DataAnnotation]), &decoded))
		assert.Equal(t, props.Data, decoded)
	})
}

func TestBuildErrors(t *testing.T) {
	t.Run("target without port => error", func(t *testing.T) {
		props := getTestProperties()
		props.Target = "http://10.0.0.5"

		routeSet, err := Build(props)

		require.Error(t, err)
		assert.Nil(t, routeSet)
	})
	t.Run("target without host => error", func(t *testing.T) {
		props := getTestProperties()
		props.Target = "not a url"

		routeSet, err := Build(props)

		require.Error(t, err)
		assert.Nil(t, routeSet)
	})
	t.Run("unserializable data payload => error", func(t *testing.T) {
		props := getTestProperties()
		props.Data = make(chan int)

		routeSet, err := Build(props)

		require.Error(t, err)
		assert.Nil(t, routeSet)
	})
}
