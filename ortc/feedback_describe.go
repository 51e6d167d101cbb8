package ortc

import "github.com/pion/rtcp"

// DescribeFeedback names the concrete pion/rtcp packet type an RTCPFeedback
// entry corresponds to, for diagnostics (§6). It is not consulted by any
// negotiation rule — packet construction and dispatch belong to a transport
// layer outside this package's scope.
func DescribeFeedback(fb RTCPFeedback) string {
	switch {
	case fb.isNackPli():
		return rtcpTypeName(&rtcp.PictureLossIndication{})
	case fb.isNack():
		return rtcpTypeName(&rtcp.TransportLayerNack{})
	case fb.isCcmFir():
		return rtcpTypeName(&rtcp.FullIntraRequest{})
	case fb.isGoogRemb():
		return rtcpTypeName(&rtcp.ReceiverEstimatedMaximumBitrate{})
	case fb.isTransportCC():
		return rtcpTypeName(&rtcp.TransportLayerCC{})
	default:
		return fb.Type
	}
}

func rtcpTypeName(p rtcp.Packet) string {
	switch p.(type) {
	case *rtcp.PictureLossIndication:
		return "PictureLossIndication"
	case *rtcp.TransportLayerNack:
		return "TransportLayerNack"
	case *rtcp.FullIntraRequest:
		return "FullIntraRequest"
	case *rtcp.ReceiverEstimatedMaximumBitrate:
		return "ReceiverEstimatedMaximumBitrate"
	case *rtcp.TransportLayerCC:
		return "TransportLayerCC"
	default:
		return "unknown"
	}
}
