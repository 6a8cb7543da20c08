package nodes

import (
	"github.com/aretw0/hexrune/pkg/domain"
	"github.com/aretw0/hexrune/pkg/graph"
)

// Persisted type ids of the standard library.
const (
	TypeBeginPlay        domain.TypeID = 10
	TypeTick             domain.TypeID = 11
	TypeEndPlay          domain.TypeID = 12
	TypeOnBeginOverlap   domain.TypeID = 13
	TypeOnEndOverlap     domain.TypeID = 14
	TypeBranch           domain.TypeID = 20
	TypeSequence         domain.TypeID = 21
	TypeDelay            domain.TypeID = 22
	TypeEntityLoop       domain.TypeID = 23
	TypeComponentLoop    domain.TypeID = 24
	TypeForLoop          domain.TypeID = 25
	TypePrintString      domain.TypeID = 30
	TypeAppendString     domain.TypeID = 31
	TypeFloatLessThan    domain.TypeID = 40
	TypeFloatMoreThan    domain.TypeID = 41
	TypeFloatLessOrEqual domain.TypeID = 42
	TypeFloatMoreOrEqual domain.TypeID = 43
	TypeFloatEqual       domain.TypeID = 44
	TypeFloatNotEqual    domain.TypeID = 45
	TypeIntLessThan      domain.TypeID = 50
	TypeIntMoreThan      domain.TypeID = 51
	TypeIntLessOrEqual   domain.TypeID = 52
	TypeIntMoreOrEqual   domain.TypeID = 53
	TypeIntEqual         domain.TypeID = 54
	TypeIntNotEqual      domain.TypeID = 55
	TypePrintEntityName  domain.TypeID = 60
	TypeSetStaticMesh    domain.TypeID = 61
	TypeTogglePointLight domain.TypeID = 62
)

type entry struct {
	typeID   domain.TypeID
	name     string
	category string
	ctor     graph.Constructor
}

var library = []entry{
	{TypeBeginPlay, "BeginPlay", "Events", newBeginPlay},
	{TypeTick, "Tick", "Events", newTick},
	{TypeEndPlay, "EndPlay", "Events", newEndPlay},
	{TypeOnBeginOverlap, "OnBeginOverlap", "Events", newOverlap},
	{TypeOnEndOverlap, "OnEndOverlap", "Events", newOverlap},

	{TypeBranch, "Branch", "Flow", newBranch},
	{TypeSequence, "Sequence", "Flow", newSequence},
	{TypeDelay, "Delay", "Flow", newDelay},
	{TypeEntityLoop, "EntityLoop", "Flow", newEntityLoop},
	{TypeComponentLoop, "ComponentLoop", "Flow", newComponentLoop},
	{TypeForLoop, "ForLoop", "Flow", newForLoop},

	{TypePrintString, "PrintString", "String", newPrintString},
	{TypeAppendString, "AppendString", "String", newAppendString},

	{TypeFloatLessThan, "Float <", "Math", floatCompare(func(a, b float32) bool { return a < b })},
	{TypeFloatMoreThan, "Float >", "Math", floatCompare(func(a, b float32) bool { return a > b })},
	{TypeFloatLessOrEqual, "Float <=", "Math", floatCompare(func(a, b float32) bool { return a <= b })},
	{TypeFloatMoreOrEqual, "Float >=", "Math", floatCompare(func(a, b float32) bool { return a >= b })},
	{TypeFloatEqual, "Float ==", "Math", floatCompare(NearlyEqual)},
	{TypeFloatNotEqual, "Float !=", "Math", floatCompare(func(a, b float32) bool { return a != b })},

	{TypeIntLessThan, "Int <", "Math", intCompare(func(a, b int32) bool { return a < b })},
	{TypeIntMoreThan, "Int >", "Math", intCompare(func(a, b int32) bool { return a > b })},
	{TypeIntLessOrEqual, "Int <=", "Math", intCompare(func(a, b int32) bool { return a <= b })},
	{TypeIntMoreOrEqual, "Int >=", "Math", intCompare(func(a, b int32) bool { return a >= b })},
	{TypeIntEqual, "Int ==", "Math", intCompare(func(a, b int32) bool { return a == b })},
	{TypeIntNotEqual, "Int !=", "Math", intCompare(func(a, b int32) bool { return a != b })},

	{TypePrintEntityName, "PrintEntityName", "Entity", newPrintEntityName},
	{TypeSetStaticMesh, "SetStaticMesh", "Entity", newSetStaticMesh},
	{TypeTogglePointLight, "TogglePointLight", "Entity", newTogglePointLight},
}

// Register adds the standard library to f in table order.
func Register(f *graph.Factory) {
	for _, e := range library {
		f.Register(e.typeID, e.name, e.category, e.ctor)
	}
}

// TriggerNodeID returns the reserved node id hosts invoke a trigger type through.
func TriggerNodeID(typeID domain.TypeID) (domain.NodeID, bool) {
	switch typeID {
	case TypeBeginPlay:
		return domain.BeginPlayNodeID, true
	case TypeTick:
		return domain.TickNodeID, true
	case TypeEndPlay:
		return domain.EndPlayNodeID, true
	case TypeOnBeginOverlap:
		return domain.BeginOverlapNodeID, true
	case TypeOnEndOverlap:
		return domain.EndOverlapNodeID, true
	}
	return 0, false
}
