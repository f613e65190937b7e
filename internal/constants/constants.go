package constants

import "time"

const AppName = "huectl"

// DeviceType identifies huectl in the bridge whitelist, as "app#device".
const DeviceType = "huectl#cli"

// the bridge drops commands sent faster than about ten per second
const CommandInterval = 100 * time.Millisecond

const DefaultTimeout = 10 * time.Second
const DefaultDBPath = "huectl.db"
const DefaultLogFile = "logs/huectl.log"
const DefaultLogLevel = "info"

// bridge events
const EventStreamPath = "/eventstream/clip/v2"

const EventBatchTypeAdd = "add"
const EventBatchTypeUpdate = "update"
const EventBatchTypeDelete = "delete"

const EventTypeZigbeeConnectivity = "zigbee_connectivity"
const EventStatusConnectivityIssue = "connectivity_issue"
const EventStatusConnected = "connected"

const EventTypeLight = "light"
const EventTypeGroupedLight = "grouped_light"
const EventTypeMotion = "motion"
const EventTypeButton = "button"
