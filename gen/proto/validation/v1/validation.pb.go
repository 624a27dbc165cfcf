// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: validation/v1/validation.proto

package validationv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type ValidationRun struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Id                string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename          string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentType      string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	DocumentCategory  string                 `protobuf:"bytes,4,opt,name=document_category,json=documentCategory,proto3" json:"document_category,omitempty"`
	UserId            string                 `protobuf:"bytes,5,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Status            string                 `protobuf:"bytes,6,opt,name=status,proto3" json:"status,omitempty"`
	Score             float64                `protobuf:"fixed64,7,opt,name=score,proto3" json:"score,omitempty"`
	TotalRecords      int32                  `protobuf:"varint,8,opt,name=total_records,json=totalRecords,proto3" json:"total_records,omitempty"`
	MatchedRecords    int32                  `protobuf:"varint,9,opt,name=matched_records,json=matchedRecords,proto3" json:"matched_records,omitempty"`
	MismatchedRecords int32                  `protobuf:"varint,10,opt,name=mismatched_records,json=mismatchedRecords,proto3" json:"mismatched_records,omitempty"`
	ErrorMessage      string                 `protobuf:"bytes,11,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt         string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"` // RFC3339
	UpdatedAt         string                 `protobuf:"bytes,13,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"` // RFC3339
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *ValidationRun) Reset() {
	*x = ValidationRun{}
	mi := &file_validation_v1_validation_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidationRun) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidationRun) ProtoMessage() {}

func (x *ValidationRun) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidationRun.ProtoReflect.Descriptor instead.
func (*ValidationRun) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{0}
}

func (x *ValidationRun) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *ValidationRun) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ValidationRun) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ValidationRun) GetDocumentCategory() string {
	if x != nil {
		return x.DocumentCategory
	}
	return ""
}

func (x *ValidationRun) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ValidationRun) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *ValidationRun) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *ValidationRun) GetTotalRecords() int32 {
	if x != nil {
		return x.TotalRecords
	}
	return 0
}

func (x *ValidationRun) GetMatchedRecords() int32 {
	if x != nil {
		return x.MatchedRecords
	}
	return 0
}

func (x *ValidationRun) GetMismatchedRecords() int32 {
	if x != nil {
		return x.MismatchedRecords
	}
	return 0
}

func (x *ValidationRun) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *ValidationRun) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *ValidationRun) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type MappingStats struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Accepted      int32                  `protobuf:"varint,1,opt,name=accepted,proto3" json:"accepted,omitempty"`
	Skipped       int32                  `protobuf:"varint,2,opt,name=skipped,proto3" json:"skipped,omitempty"`
	Failed        int32                  `protobuf:"varint,3,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MappingStats) Reset() {
	*x = MappingStats{}
	mi := &file_validation_v1_validation_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MappingStats) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MappingStats) ProtoMessage() {}

func (x *MappingStats) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MappingStats.ProtoReflect.Descriptor instead.
func (*MappingStats) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{1}
}

func (x *MappingStats) GetAccepted() int32 {
	if x != nil {
		return x.Accepted
	}
	return 0
}

func (x *MappingStats) GetSkipped() int32 {
	if x != nil {
		return x.Skipped
	}
	return 0
}

func (x *MappingStats) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type ValidateRequest struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Path             string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"` // stored upload path on the worker's filesystem
	Filename         string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	DocumentType     string                 `protobuf:"bytes,3,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	DocumentCategory string                 `protobuf:"bytes,4,opt,name=document_category,json=documentCategory,proto3" json:"document_category,omitempty"`
	UserId           string                 `protobuf:"bytes,5,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	HeaderRow        int32                  `protobuf:"varint,6,opt,name=header_row,json=headerRow,proto3" json:"header_row,omitempty"` // 1-based; 0 means first row
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *ValidateRequest) Reset() {
	*x = ValidateRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateRequest) ProtoMessage() {}

func (x *ValidateRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateRequest.ProtoReflect.Descriptor instead.
func (*ValidateRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{2}
}

func (x *ValidateRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

func (x *ValidateRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ValidateRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *ValidateRequest) GetDocumentCategory() string {
	if x != nil {
		return x.DocumentCategory
	}
	return ""
}

func (x *ValidateRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ValidateRequest) GetHeaderRow() int32 {
	if x != nil {
		return x.HeaderRow
	}
	return 0
}

type ValidateResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Run           *ValidationRun         `protobuf:"bytes,1,opt,name=run,proto3" json:"run,omitempty"`
	Mapping       *MappingStats          `protobuf:"bytes,2,opt,name=mapping,proto3" json:"mapping,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateResponse) Reset() {
	*x = ValidateResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateResponse) ProtoMessage() {}

func (x *ValidateResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateResponse.ProtoReflect.Descriptor instead.
func (*ValidateResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{3}
}

func (x *ValidateResponse) GetRun() *ValidationRun {
	if x != nil {
		return x.Run
	}
	return nil
}

func (x *ValidateResponse) GetMapping() *MappingStats {
	if x != nil {
		return x.Mapping
	}
	return nil
}

type ValidateAsyncResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ValidateAsyncResponse) Reset() {
	*x = ValidateAsyncResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ValidateAsyncResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ValidateAsyncResponse) ProtoMessage() {}

func (x *ValidateAsyncResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ValidateAsyncResponse.ProtoReflect.Descriptor instead.
func (*ValidateAsyncResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{4}
}

func (x *ValidateAsyncResponse) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ValidateAsyncResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

type GetStatusRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetStatusRequest) Reset() {
	*x = GetStatusRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusRequest) ProtoMessage() {}

func (x *GetStatusRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusRequest.ProtoReflect.Descriptor instead.
func (*GetStatusRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{5}
}

func (x *GetStatusRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type GetStatusResponse struct {
	state             protoimpl.MessageState `protogen:"open.v1"`
	Status            string                 `protobuf:"bytes,1,opt,name=status,proto3" json:"status,omitempty"`
	Score             float64                `protobuf:"fixed64,2,opt,name=score,proto3" json:"score,omitempty"`
	TotalRecords      int32                  `protobuf:"varint,3,opt,name=total_records,json=totalRecords,proto3" json:"total_records,omitempty"`
	MatchedRecords    int32                  `protobuf:"varint,4,opt,name=matched_records,json=matchedRecords,proto3" json:"matched_records,omitempty"`
	MismatchedRecords int32                  `protobuf:"varint,5,opt,name=mismatched_records,json=mismatchedRecords,proto3" json:"mismatched_records,omitempty"`
	ErrorMessage      string                 `protobuf:"bytes,6,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *GetStatusResponse) Reset() {
	*x = GetStatusResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetStatusResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetStatusResponse) ProtoMessage() {}

func (x *GetStatusResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetStatusResponse.ProtoReflect.Descriptor instead.
func (*GetStatusResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{6}
}

func (x *GetStatusResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *GetStatusResponse) GetScore() float64 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *GetStatusResponse) GetTotalRecords() int32 {
	if x != nil {
		return x.TotalRecords
	}
	return 0
}

func (x *GetStatusResponse) GetMatchedRecords() int32 {
	if x != nil {
		return x.MatchedRecords
	}
	return 0
}

func (x *GetStatusResponse) GetMismatchedRecords() int32 {
	if x != nil {
		return x.MismatchedRecords
	}
	return 0
}

func (x *GetStatusResponse) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

type ListRunsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsRequest) Reset() {
	*x = ListRunsRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsRequest) ProtoMessage() {}

func (x *ListRunsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsRequest.ProtoReflect.Descriptor instead.
func (*ListRunsRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{7}
}

func (x *ListRunsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListRunsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListRunsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListRunsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Runs          []*ValidationRun       `protobuf:"bytes,1,rep,name=runs,proto3" json:"runs,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListRunsResponse) Reset() {
	*x = ListRunsResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListRunsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListRunsResponse) ProtoMessage() {}

func (x *ListRunsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListRunsResponse.ProtoReflect.Descriptor instead.
func (*ListRunsResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{8}
}

func (x *ListRunsResponse) GetRuns() []*ValidationRun {
	if x != nil {
		return x.Runs
	}
	return nil
}

func (x *ListRunsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

type InvalidGroup struct {
	state            protoimpl.MessageState `protogen:"open.v1"`
	Connector        string                 `protobuf:"bytes,1,opt,name=connector,proto3" json:"connector,omitempty"`
	Category         string                 `protobuf:"bytes,2,opt,name=category,proto3" json:"category,omitempty"`
	ErrorText        string                 `protobuf:"bytes,3,opt,name=error_text,json=errorText,proto3" json:"error_text,omitempty"`
	UploadedTotal    float64                `protobuf:"fixed64,4,opt,name=uploaded_total,json=uploadedTotal,proto3" json:"uploaded_total,omitempty"`
	SourceTotal      float64                `protobuf:"fixed64,5,opt,name=source_total,json=sourceTotal,proto3" json:"source_total,omitempty"`
	DiscrepancyValue float64                `protobuf:"fixed64,6,opt,name=discrepancy_value,json=discrepancyValue,proto3" json:"discrepancy_value,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *InvalidGroup) Reset() {
	*x = InvalidGroup{}
	mi := &file_validation_v1_validation_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *InvalidGroup) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InvalidGroup) ProtoMessage() {}

func (x *InvalidGroup) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InvalidGroup.ProtoReflect.Descriptor instead.
func (*InvalidGroup) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{9}
}

func (x *InvalidGroup) GetConnector() string {
	if x != nil {
		return x.Connector
	}
	return ""
}

func (x *InvalidGroup) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *InvalidGroup) GetErrorText() string {
	if x != nil {
		return x.ErrorText
	}
	return ""
}

func (x *InvalidGroup) GetUploadedTotal() float64 {
	if x != nil {
		return x.UploadedTotal
	}
	return 0
}

func (x *InvalidGroup) GetSourceTotal() float64 {
	if x != nil {
		return x.SourceTotal
	}
	return 0
}

func (x *InvalidGroup) GetDiscrepancyValue() float64 {
	if x != nil {
		return x.DiscrepancyValue
	}
	return 0
}

type MatchedRow struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Connector     string                 `protobuf:"bytes,1,opt,name=connector,proto3" json:"connector,omitempty"`
	RowIndex      int32                  `protobuf:"varint,2,opt,name=row_index,json=rowIndex,proto3" json:"row_index,omitempty"`
	Note          string                 `protobuf:"bytes,3,opt,name=note,proto3" json:"note,omitempty"`
	UploadedValue float64                `protobuf:"fixed64,4,opt,name=uploaded_value,json=uploadedValue,proto3" json:"uploaded_value,omitempty"`
	SourceTotal   float64                `protobuf:"fixed64,5,opt,name=source_total,json=sourceTotal,proto3" json:"source_total,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MatchedRow) Reset() {
	*x = MatchedRow{}
	mi := &file_validation_v1_validation_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MatchedRow) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MatchedRow) ProtoMessage() {}

func (x *MatchedRow) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MatchedRow.ProtoReflect.Descriptor instead.
func (*MatchedRow) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{10}
}

func (x *MatchedRow) GetConnector() string {
	if x != nil {
		return x.Connector
	}
	return ""
}

func (x *MatchedRow) GetRowIndex() int32 {
	if x != nil {
		return x.RowIndex
	}
	return 0
}

func (x *MatchedRow) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

func (x *MatchedRow) GetUploadedValue() float64 {
	if x != nil {
		return x.UploadedValue
	}
	return 0
}

func (x *MatchedRow) GetSourceTotal() float64 {
	if x != nil {
		return x.SourceTotal
	}
	return 0
}

type ListInvalidGroupsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Search        string                 `protobuf:"bytes,4,opt,name=search,proto3" json:"search,omitempty"`     // connector substring
	Category      string                 `protobuf:"bytes,5,opt,name=category,proto3" json:"category,omitempty"` // key_not_found | missing_value | discrepancy
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvalidGroupsRequest) Reset() {
	*x = ListInvalidGroupsRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvalidGroupsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvalidGroupsRequest) ProtoMessage() {}

func (x *ListInvalidGroupsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvalidGroupsRequest.ProtoReflect.Descriptor instead.
func (*ListInvalidGroupsRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{11}
}

func (x *ListInvalidGroupsRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListInvalidGroupsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListInvalidGroupsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListInvalidGroupsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *ListInvalidGroupsRequest) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

type ListInvalidGroupsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Groups        []*InvalidGroup        `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListInvalidGroupsResponse) Reset() {
	*x = ListInvalidGroupsResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListInvalidGroupsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListInvalidGroupsResponse) ProtoMessage() {}

func (x *ListInvalidGroupsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListInvalidGroupsResponse.ProtoReflect.Descriptor instead.
func (*ListInvalidGroupsResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{12}
}

func (x *ListInvalidGroupsResponse) GetGroups() []*InvalidGroup {
	if x != nil {
		return x.Groups
	}
	return nil
}

func (x *ListInvalidGroupsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListInvalidGroupsResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListInvalidGroupsResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ListMatchedRowsRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	Page          int32                  `protobuf:"varint,2,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,3,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	Search        string                 `protobuf:"bytes,4,opt,name=search,proto3" json:"search,omitempty"` // connector substring
	Note          string                 `protobuf:"bytes,5,opt,name=note,proto3" json:"note,omitempty"`     // sum_matched | rounding | retur_not_recorded
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchedRowsRequest) Reset() {
	*x = ListMatchedRowsRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchedRowsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchedRowsRequest) ProtoMessage() {}

func (x *ListMatchedRowsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchedRowsRequest.ProtoReflect.Descriptor instead.
func (*ListMatchedRowsRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{13}
}

func (x *ListMatchedRowsRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

func (x *ListMatchedRowsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListMatchedRowsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *ListMatchedRowsRequest) GetSearch() string {
	if x != nil {
		return x.Search
	}
	return ""
}

func (x *ListMatchedRowsRequest) GetNote() string {
	if x != nil {
		return x.Note
	}
	return ""
}

type ListMatchedRowsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Rows          []*MatchedRow          `protobuf:"bytes,1,rep,name=rows,proto3" json:"rows,omitempty"`
	Total         int32                  `protobuf:"varint,2,opt,name=total,proto3" json:"total,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListMatchedRowsResponse) Reset() {
	*x = ListMatchedRowsResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListMatchedRowsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchedRowsResponse) ProtoMessage() {}

func (x *ListMatchedRowsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchedRowsResponse.ProtoReflect.Descriptor instead.
func (*ListMatchedRowsResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{14}
}

func (x *ListMatchedRowsResponse) GetRows() []*MatchedRow {
	if x != nil {
		return x.Rows
	}
	return nil
}

func (x *ListMatchedRowsResponse) GetTotal() int32 {
	if x != nil {
		return x.Total
	}
	return 0
}

func (x *ListMatchedRowsResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *ListMatchedRowsResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ExportReportRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RunId         string                 `protobuf:"bytes,1,opt,name=run_id,json=runId,proto3" json:"run_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportRequest) Reset() {
	*x = ExportReportRequest{}
	mi := &file_validation_v1_validation_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportRequest) ProtoMessage() {}

func (x *ExportReportRequest) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportRequest.ProtoReflect.Descriptor instead.
func (*ExportReportRequest) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{15}
}

func (x *ExportReportRequest) GetRunId() string {
	if x != nil {
		return x.RunId
	}
	return ""
}

type ExportReportResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Filename      string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	Content       []byte                 `protobuf:"bytes,2,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportReportResponse) Reset() {
	*x = ExportReportResponse{}
	mi := &file_validation_v1_validation_proto_msgTypes[16]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportReportResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportReportResponse) ProtoMessage() {}

func (x *ExportReportResponse) ProtoReflect() protoreflect.Message {
	mi := &file_validation_v1_validation_proto_msgTypes[16]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportReportResponse.ProtoReflect.Descriptor instead.
func (*ExportReportResponse) Descriptor() ([]byte, []int) {
	return file_validation_v1_validation_proto_rawDescGZIP(), []int{16}
}

func (x *ExportReportResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *ExportReportResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

var File_validation_v1_validation_proto protoreflect.FileDescriptor

const file_validation_v1_validation_proto_rawDesc = "" +
	"\n" +
	"\x1evalidation/v1/validation.proto\x12\rvalidation.v1\"\xb4\x03\n" +
	"\rValidationRun\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12+\n" +
	"\x11document_category\x18\x04 \x01(\tR\x10documentCategory\x12\x17\n" +
	"\auser_id\x18\x05 \x01(\tR\x06userId\x12\x16\n" +
	"\x06status\x18\x06 \x01(\tR\x06status\x12\x14\n" +
	"\x05score\x18\a \x01(\x01R\x05score\x12#\n" +
	"\rtotal_records\x18\b \x01(\x05R\ftotalRecords\x12'\n" +
	"\x0fmatched_records\x18\t \x01(\x05R\x0ematchedRecords\x12-\n" +
	"\x12mismatched_records\x18\n" +
	" \x01(\x05R\x11mismatchedRecords\x12#\n" +
	"\rerror_message\x18\v \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\r \x01(\tR\tupdatedAt\"\\\n" +
	"\fMappingStats\x12\x1a\n" +
	"\baccepted\x18\x01 \x01(\x05R\baccepted\x12\x18\n" +
	"\askipped\x18\x02 \x01(\x05R\askipped\x12\x16\n" +
	"\x06failed\x18\x03 \x01(\x05R\x06failed\"\xcb\x01\n" +
	"\x0fValidateRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12#\n" +
	"\rdocument_type\x18\x03 \x01(\tR\fdocumentType\x12+\n" +
	"\x11document_category\x18\x04 \x01(\tR\x10documentCategory\x12\x17\n" +
	"\auser_id\x18\x05 \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"header_row\x18\x06 \x01(\x05R\theaderRow\"y\n" +
	"\x10ValidateResponse\x12.\n" +
	"\x03run\x18\x01 \x01(\v2\x1c.validation.v1.ValidationRunR\x03run\x125\n" +
	"\amapping\x18\x02 \x01(\v2\x1b.validation.v1.MappingStatsR\amapping\"F\n" +
	"\x15ValidateAsyncResponse\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\")\n" +
	"\x10GetStatusRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"\xe3\x01\n" +
	"\x11GetStatusResponse\x12\x16\n" +
	"\x06status\x18\x01 \x01(\tR\x06status\x12\x14\n" +
	"\x05score\x18\x02 \x01(\x01R\x05score\x12#\n" +
	"\rtotal_records\x18\x03 \x01(\x05R\ftotalRecords\x12'\n" +
	"\x0fmatched_records\x18\x04 \x01(\x05R\x0ematchedRecords\x12-\n" +
	"\x12mismatched_records\x18\x05 \x01(\x05R\x11mismatchedRecords\x12#\n" +
	"\rerror_message\x18\x06 \x01(\tR\ferrorMessage\"[\n" +
	"\x0fListRunsRequest\x12\x17\n" +
	"\auser_id\x18\x01 \x01(\tR\x06userId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\"Z\n" +
	"\x10ListRunsResponse\x120\n" +
	"\x04runs\x18\x01 \x03(\v2\x1c.validation.v1.ValidationRunR\x04runs\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\"\xde\x01\n" +
	"\fInvalidGroup\x12\x1c\n" +
	"\tconnector\x18\x01 \x01(\tR\tconnector\x12\x1a\n" +
	"\bcategory\x18\x02 \x01(\tR\bcategory\x12\x1d\n" +
	"\n" +
	"error_text\x18\x03 \x01(\tR\terrorText\x12%\n" +
	"\x0euploaded_total\x18\x04 \x01(\x01R\ruploadedTotal\x12!\n" +
	"\fsource_total\x18\x05 \x01(\x01R\vsourceTotal\x12+\n" +
	"\x11discrepancy_value\x18\x06 \x01(\x01R\x10discrepancyValue\"\xa5\x01\n" +
	"\n" +
	"MatchedRow\x12\x1c\n" +
	"\tconnector\x18\x01 \x01(\tR\tconnector\x12\x1b\n" +
	"\trow_index\x18\x02 \x01(\x05R\browIndex\x12\x12\n" +
	"\x04note\x18\x03 \x01(\tR\x04note\x12%\n" +
	"\x0euploaded_value\x18\x04 \x01(\x01R\ruploadedValue\x12!\n" +
	"\fsource_total\x18\x05 \x01(\x01R\vsourceTotal\"\x96\x01\n" +
	"\x18ListInvalidGroupsRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06search\x18\x04 \x01(\tR\x06search\x12\x1a\n" +
	"\bcategory\x18\x05 \x01(\tR\bcategory\"\x97\x01\n" +
	"\x19ListInvalidGroupsResponse\x123\n" +
	"\x06groups\x18\x01 \x03(\v2\x1b.validation.v1.InvalidGroupR\x06groups\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"\x8c\x01\n" +
	"\x16ListMatchedRowsRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\x12\x12\n" +
	"\x04page\x18\x02 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x03 \x01(\x05R\bpageSize\x12\x16\n" +
	"\x06search\x18\x04 \x01(\tR\x06search\x12\x12\n" +
	"\x04note\x18\x05 \x01(\tR\x04note\"\x8f\x01\n" +
	"\x17ListMatchedRowsResponse\x12-\n" +
	"\x04rows\x18\x01 \x03(\v2\x19.validation.v1.MatchedRowR\x04rows\x12\x14\n" +
	"\x05total\x18\x02 \x01(\x05R\x05total\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\",\n" +
	"\x13ExportReportRequest\x12\x15\n" +
	"\x06run_id\x18\x01 \x01(\tR\x05runId\"L\n" +
	"\x14ExportReportResponse\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12\x18\n" +
	"\acontent\x18\x02 \x01(\fR\acontent2\xf7\x04\n" +
	"\x11ValidationService\x12K\n" +
	"\bValidate\x12\x1e.validation.v1.ValidateRequest\x1a\x1f.validation.v1.ValidateResponse\x12U\n" +
	"\rValidateAsync\x12\x1e.validation.v1.ValidateRequest\x1a$.validation.v1.ValidateAsyncResponse\x12N\n" +
	"\tGetStatus\x12\x1f.validation.v1.GetStatusRequest\x1a .validation.v1.GetStatusResponse\x12K\n" +
	"\bListRuns\x12\x1e.validation.v1.ListRunsRequest\x1a\x1f.validation.v1.ListRunsResponse\x12f\n" +
	"\x11ListInvalidGroups\x12'.validation.v1.ListInvalidGroupsRequest\x1a(.validation.v1.ListInvalidGroupsResponse\x12`\n" +
	"\x0fListMatchedRows\x12%.validation.v1.ListMatchedRowsRequest\x1a&.validation.v1.ListMatchedRowsResponse\x12W\n" +
	"\fExportReport\x12\".validation.v1.ExportReportRequest\x1a#.validation.v1.ExportReportResponseBSZQgithub.com/FadhilAufa5/kfa-validation-sub001/gen/proto/validation/v1;validationv1b\x06proto3"

var (
	file_validation_v1_validation_proto_rawDescOnce sync.Once
	file_validation_v1_validation_proto_rawDescData []byte
)

func file_validation_v1_validation_proto_rawDescGZIP() []byte {
	file_validation_v1_validation_proto_rawDescOnce.Do(func() {
		file_validation_v1_validation_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_validation_v1_validation_proto_rawDesc), len(file_validation_v1_validation_proto_rawDesc)))
	})
	return file_validation_v1_validation_proto_rawDescData
}

var file_validation_v1_validation_proto_msgTypes = make([]protoimpl.MessageInfo, 17)
var file_validation_v1_validation_proto_goTypes = []any{
	(*ValidationRun)(nil),             // 0: validation.v1.ValidationRun
	(*MappingStats)(nil),              // 1: validation.v1.MappingStats
	(*ValidateRequest)(nil),           // 2: validation.v1.ValidateRequest
	(*ValidateResponse)(nil),          // 3: validation.v1.ValidateResponse
	(*ValidateAsyncResponse)(nil),     // 4: validation.v1.ValidateAsyncResponse
	(*GetStatusRequest)(nil),          // 5: validation.v1.GetStatusRequest
	(*GetStatusResponse)(nil),         // 6: validation.v1.GetStatusResponse
	(*ListRunsRequest)(nil),           // 7: validation.v1.ListRunsRequest
	(*ListRunsResponse)(nil),          // 8: validation.v1.ListRunsResponse
	(*InvalidGroup)(nil),              // 9: validation.v1.InvalidGroup
	(*MatchedRow)(nil),                // 10: validation.v1.MatchedRow
	(*ListInvalidGroupsRequest)(nil),  // 11: validation.v1.ListInvalidGroupsRequest
	(*ListInvalidGroupsResponse)(nil), // 12: validation.v1.ListInvalidGroupsResponse
	(*ListMatchedRowsRequest)(nil),    // 13: validation.v1.ListMatchedRowsRequest
	(*ListMatchedRowsResponse)(nil),   // 14: validation.v1.ListMatchedRowsResponse
	(*ExportReportRequest)(nil),       // 15: validation.v1.ExportReportRequest
	(*ExportReportResponse)(nil),      // 16: validation.v1.ExportReportResponse
}
var file_validation_v1_validation_proto_depIdxs = []int32{
	0,  // 0: validation.v1.ValidateResponse.run:type_name -> validation.v1.ValidationRun
	1,  // 1: validation.v1.ValidateResponse.mapping:type_name -> validation.v1.MappingStats
	0,  // 2: validation.v1.ListRunsResponse.runs:type_name -> validation.v1.ValidationRun
	9,  // 3: validation.v1.ListInvalidGroupsResponse.groups:type_name -> validation.v1.InvalidGroup
	10, // 4: validation.v1.ListMatchedRowsResponse.rows:type_name -> validation.v1.MatchedRow
	2,  // 5: validation.v1.ValidationService.Validate:input_type -> validation.v1.ValidateRequest
	2,  // 6: validation.v1.ValidationService.ValidateAsync:input_type -> validation.v1.ValidateRequest
	5,  // 7: validation.v1.ValidationService.GetStatus:input_type -> validation.v1.GetStatusRequest
	7,  // 8: validation.v1.ValidationService.ListRuns:input_type -> validation.v1.ListRunsRequest
	11, // 9: validation.v1.ValidationService.ListInvalidGroups:input_type -> validation.v1.ListInvalidGroupsRequest
	13, // 10: validation.v1.ValidationService.ListMatchedRows:input_type -> validation.v1.ListMatchedRowsRequest
	15, // 11: validation.v1.ValidationService.ExportReport:input_type -> validation.v1.ExportReportRequest
	3,  // 12: validation.v1.ValidationService.Validate:output_type -> validation.v1.ValidateResponse
	4,  // 13: validation.v1.ValidationService.ValidateAsync:output_type -> validation.v1.ValidateAsyncResponse
	6,  // 14: validation.v1.ValidationService.GetStatus:output_type -> validation.v1.GetStatusResponse
	8,  // 15: validation.v1.ValidationService.ListRuns:output_type -> validation.v1.ListRunsResponse
	12, // 16: validation.v1.ValidationService.ListInvalidGroups:output_type -> validation.v1.ListInvalidGroupsResponse
	14, // 17: validation.v1.ValidationService.ListMatchedRows:output_type -> validation.v1.ListMatchedRowsResponse
	16, // 18: validation.v1.ValidationService.ExportReport:output_type -> validation.v1.ExportReportResponse
	12, // [12:19] is the sub-list for method output_type
	5,  // [5:12] is the sub-list for method input_type
	5,  // [5:5] is the sub-list for extension type_name
	5,  // [5:5] is the sub-list for extension extendee
	0,  // [0:5] is the sub-list for field type_name
}

func init() { file_validation_v1_validation_proto_init() }
func file_validation_v1_validation_proto_init() {
	if File_validation_v1_validation_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_validation_v1_validation_proto_rawDesc), len(file_validation_v1_validation_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   17,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_validation_v1_validation_proto_goTypes,
		DependencyIndexes: file_validation_v1_validation_proto_depIdxs,
		MessageInfos:      file_validation_v1_validation_proto_msgTypes,
	}.Build()
	File_validation_v1_validation_proto = out.File
	file_validation_v1_validation_proto_goTypes = nil
	file_validation_v1_validation_proto_depIdxs = nil
}
