package resource

import "github.com/wheelibin/huelib/modifier"

// Config is the configuration of the bridge.
type Config struct {
	Name             string `json:"name"`
	ZigbeeChannel    int    `json:"zigbeechannel"`
	BridgeID         string `json:"bridgeid"`
	MAC              string `json:"mac"`
	DHCP             bool   `json:"dhcp"`
	IPAddress        string `json:"ipaddress"`
	Netmask          string `json:"netmask"`
	Gateway          string `json:"gateway"`
	ProxyAddress     string `json:"proxyaddress"`
	ProxyPort        int    `json:"proxyport"`
	UTC              string `json:"UTC"`
	LocalTime        string `json:"localtime"`
	Timezone         string `json:"timezone"`
	ModelID          string `json:"modelid"`
	DatastoreVersion string `json:"datastoreversion"`
	SoftwareVersion  string `json:"swversion"`
	APIVersion       string `json:"apiversion"`
	LinkButton       bool   `json:"linkbutton"`
	PortalServices   bool   `json:"portalservices"`
	FactoryNew       bool   `json:"factorynew"`
	ReplacesBridgeID string `json:"replacesbridgeid,omitempty"`
	StarterKitID     string `json:"starterkitid,omitempty"`
	// Whitelist maps usernames to the apps registered with the bridge.
	Whitelist map[string]WhitelistEntry `json:"whitelist"`
}

type WhitelistEntry struct {
	Name        string `json:"name"`
	LastUseDate string `json:"last use date"`
	CreateDate  string `json:"create date"`
}

var configFields = modifier.Table{
	"name":          {},
	"proxyaddress":  {},
	"proxyport":     {},
	"zigbeechannel": {},
	"ipaddress":     {},
	"netmask":       {},
	"gateway":       {},
	"dhcp":          {},
	"linkbutton":    {},
	"touchlink":     {},
	"timezone":      {},
	"UTC":           {},
}

// ConfigModifier changes the bridge configuration.
type ConfigModifier struct {
	*modifier.Modifier
}

func NewConfigModifier() *ConfigModifier {
	return &ConfigModifier{modifier.New(configFields)}
}

func (m *ConfigModifier) Name(name string) *ConfigModifier {
	m.Override("name", name)
	return m
}

func (m *ConfigModifier) ProxyAddress(address string) *ConfigModifier {
	m.Override("proxyaddress", address)
	return m
}

func (m *ConfigModifier) ProxyPort(port uint16) *ConfigModifier {
	m.Override("proxyport", port)
	return m
}

// ZigbeeChannel moves the bridge to another channel (11, 15, 20 or 25).
func (m *ConfigModifier) ZigbeeChannel(channel uint8) *ConfigModifier {
	m.Override("zigbeechannel", channel)
	return m
}

func (m *ConfigModifier) IPAddress(address string) *ConfigModifier {
	m.Override("ipaddress", address)
	return m
}

func (m *ConfigModifier) Netmask(netmask string) *ConfigModifier {
	m.Override("netmask", netmask)
	return m
}

func (m *ConfigModifier) Gateway(gateway string) *ConfigModifier {
	m.Override("gateway", gateway)
	return m
}

func (m *ConfigModifier) DHCP(enabled bool) *ConfigModifier {
	m.Override("dhcp", enabled)
	return m
}

// LinkButton emulates pressing the link button.
func (m *ConfigModifier) LinkButton(pressed bool) *ConfigModifier {
	m.Override("linkbutton", pressed)
	return m
}

// Touchlink starts a touchlink scan for nearby lights.
func (m *ConfigModifier) Touchlink() *ConfigModifier {
	m.Override("touchlink", true)
	return m
}

func (m *ConfigModifier) Timezone(timezone string) *ConfigModifier {
	m.Override("timezone", timezone)
	return m
}

func (m *ConfigModifier) UTC(utc string) *ConfigModifier {
	m.Override("UTC", utc)
	return m
}
