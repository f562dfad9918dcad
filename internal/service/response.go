package service

import "strconv"

// ResponseKind closes the two shapes the message field can take: a
// literal "success" marker or an echoed identity. Which entity gets
// which is part of the contract existing callers depend on.
type ResponseKind int

const (
	KindAck ResponseKind = iota
	KindEchoedID
)

type Response struct {
	Kind    ResponseKind `json:"-"`
	Message string       `json:"message"`
}

func Ack() Response {
	return Response{Kind: KindAck, Message: "success"}
}

func EchoedID(id int) Response {
	return Response{Kind: KindEchoedID, Message: strconv.Itoa(id)}
}
